package server

import (
	"net/http"
	"os"

	"github.com/Lord-Y/dircache"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Server hold all required configuration to start the instance
type Server struct {
	Logger *zerolog.Logger

	// Host is the address to use by the http server
	Host string

	// HTTPPort to use to handle http requests
	HTTPPort int

	// ConfigFile is the path of the yaml directories config
	ConfigFile string

	// DataDir is the working directory holding the bolt database
	DataDir string

	quit chan os.Signal

	// store is the bolt backend of all directories
	store *dircache.BoltStore

	// manager holds directory caches
	manager *dircache.Manager[*dircache.Record]

	// sessions hold directory sessions by directory name
	sessions map[string]*dircache.Session[*dircache.Record]

	// registry is the prometheus registry exposed on /metrics
	registry *prometheus.Registry

	// router is the gin engine handling api requests
	router *gin.Engine

	// apiServer hold the config of the HTTP API server
	apiServer *http.Server
}
