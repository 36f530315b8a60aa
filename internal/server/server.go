/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/arenaworks/arenacomp/internal/api"
	"github.com/arenaworks/arenacomp/internal/cache"
	"github.com/arenaworks/arenacomp/internal/config"
	"github.com/arenaworks/arenacomp/internal/db"
	"github.com/arenaworks/arenacomp/internal/eventbus"
	"github.com/arenaworks/arenacomp/internal/eventdata"
	"github.com/arenaworks/arenacomp/internal/progression"
	"github.com/arenaworks/arenacomp/internal/schedule"
	"github.com/arenaworks/arenacomp/internal/store"
	"github.com/arenaworks/arenacomp/internal/telemetry"
	"github.com/arenaworks/arenacomp/internal/version"
)

// Server bundles HTTP and supporting services.
type Server struct {
	cfg        *config.Config
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server

	db    *gorm.DB
	cache *cache.Cache
	bus   *eventbus.NATSBus
	api   *api.API
}

// New constructs the server and wires dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	database, err := db.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	bus := eventbus.NewNATSBus(cfg.NATSURL, logger)

	var scheduleCache *cache.Cache
	if cfg.CacheEnabled {
		cacheCfg := cache.DefaultConfig()
		cacheCfg.RedisAddr = cfg.RedisAddr
		cacheCfg.RedisPassword = cfg.RedisPassword
		cacheCfg.RedisDB = cfg.RedisDB
		scheduleCache = cache.New(cacheCfg, logger)
	}

	gormStore := store.NewGormStore(database)
	data := eventdata.New(database, logger)
	generator := schedule.NewGenerator(data, gormStore, bus, logger)
	progressionSvc := progression.New(gormStore, gormStore, gormStore, generator, bus, logger)

	srv := &Server{
		cfg:    cfg,
		logger: logger,
		db:     database,
		cache:  scheduleCache,
		bus:    bus,
		api:    api.New(generator, progressionSvc, gormStore, scheduleCache, bus, logger),
	}

	srv.router = chi.NewRouter()
	srv.router.Use(middleware.RequestID)
	srv.router.Use(middleware.RealIP)
	srv.router.Use(middleware.Recoverer)
	srv.router.Use(telemetry.Middleware)

	srv.configureRoutes()

	srv.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTPBind, cfg.HTTPPort),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, nil
}

func (s *Server) configureRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","version":"` + version.Version + `"}`))
	})

	s.router.Handle("/metrics", telemetry.Handler())

	s.api.Routes(s.router)
}

// HTTPServer returns the configured HTTP server for the caller to run.
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// Close releases server resources.
func (s *Server) Close() error {
	if err := s.bus.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("event bus close failed")
	}
	if err := s.cache.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("cache close failed")
	}
	return db.Close(s.db)
}
