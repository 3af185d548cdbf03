package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/server/cache"
	"github.com/karonyt/MakeCountryDocument/internal/server/metrics"
	"github.com/karonyt/MakeCountryDocument/internal/server/middleware"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	store     *catalogs.Store
	cache     *cache.Cache
	metrics   *metrics.HTTPMetrics
	limiter   *middleware.RateLimiter
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a server for the app's catalog store.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = DefaultConfig().PathPrefix
	}

	store, err := app.Store()
	if err != nil {
		return nil, errors.WrapResource("create", "server", "", err)
	}

	s := &Server{
		app:       app,
		store:     store,
		cache:     cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
	if cfg.MetricsEnabled {
		s.metrics = metrics.NewHTTPMetrics()
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
	}

	logger.Debug().
		Interface("catalogs", store.Counts()).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Server instance created")
	return s, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown stops the rate limiter sweep and drops cached views.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().
		Int("cache_items", s.cache.ItemCount()).
		Msg("Shutting down server")
	if s.limiter != nil {
		s.limiter.Stop()
	}
	s.cache.Clear()
	return nil
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Store returns the catalog store the server reads from.
func (s *Server) Store() *catalogs.Store {
	return s.store
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
