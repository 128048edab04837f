package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lord-Y/dircache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Start builds all requirements, starts the api server
// and blocks until SIGINT or SIGTERM is received
func (s *Server) Start() error {
	if err := s.build(); err != nil {
		return err
	}
	defer s.close()

	s.quit = make(chan os.Signal, 1)
	signal.Notify(s.quit, os.Interrupt, syscall.SIGTERM)

	s.newAPIServer()
	s.startAPIServer()
	s.Logger.Info().Msgf("API server listening on %s", s.apiServer.Addr)

	<-s.quit
	s.Logger.Info().Msg("Shutting down")
	return s.stopAPIServer()
}

// build loads the config and wires store, caches, sessions and router
func (s *Server) build() error {
	config, err := dircache.LoadConfig(s.ConfigFile)
	if err != nil {
		return err
	}

	if s.store, err = dircache.NewBoltStore(dircache.BoltOptions{DataDir: s.DataDir}); err != nil {
		return fmt.Errorf("fail to open bolt store: %w", err)
	}

	s.registry = prometheus.NewRegistry()
	s.registry.MustRegister(collectors.NewGoCollector())
	metrics, err := dircache.NewPrometheusMetrics(s.registry, config.MetricsNamespace)
	if err != nil {
		return err
	}

	if s.manager, err = dircache.NewManager[*dircache.Record](config, dircache.ManagerOptions{
		Logger:  s.Logger,
		Metrics: metrics,
	}); err != nil {
		return err
	}

	s.sessions = make(map[string]*dircache.Session[*dircache.Record], len(config.Directories))
	for _, directory := range config.Directories {
		backend, err := s.store.Directory(directory.Name, directory.ReadOnly)
		if err != nil {
			return fmt.Errorf("fail to open directory %s: %w", directory.Name, err)
		}
		cache, err := s.manager.Cache(directory.Name)
		if err != nil {
			return err
		}
		s.sessions[directory.Name] = dircache.NewSession(cache, backend)
	}

	s.router = s.newApiRouters()
	return nil
}

// close releases the bolt store
func (s *Server) close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.Logger.Error().Err(err).Msg("Fail to close bolt store")
	}
}

// newAPIServer will build the api server config
func (s *Server) newAPIServer() {
	s.apiServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.Host, s.HTTPPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// startAPIServer will start the api server
func (s *Server) startAPIServer() {
	go func() {
		if err := s.apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Startup api server failed")
		}
	}()
}

// stopAPIServer will stop the api server
func (s *Server) stopAPIServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := s.apiServer.Shutdown(ctx); err != nil {
		s.Logger.Error().Err(err).Msg("API server shutted down abruptly")
		return err
	}
	return nil
}
