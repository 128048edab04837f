package server

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newApiRouters will return the api router
func (s *Server) newApiRouters() *gin.Engine {
	gin.DisableConsoleColor()
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestid.New())
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/directories", s.fetchDirectories)
		v1.DELETE("/cache", s.flushAllCaches)

		v1.GET("/directories/:name/entries/:id", s.fetchEntry)
		v1.POST("/directories/:name/entries", s.createEntry)
		v1.PUT("/directories/:name/entries/:id", s.updateEntry)
		v1.DELETE("/directories/:name/entries/:id", s.deleteEntry)

		v1.GET("/directories/:name/cache/stats", s.fetchCacheStats)
		v1.POST("/directories/:name/cache/invalidate", s.invalidateCache)
		v1.DELETE("/directories/:name/cache", s.flushCache)
	}
	return router
}
