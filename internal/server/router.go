package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karonyt/MakeCountryDocument/internal/server/handlers"
	"github.com/karonyt/MakeCountryDocument/internal/server/middleware"
	"github.com/karonyt/MakeCountryDocument/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(s.middlewares()...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method)
	})

	h := handlers.New(s.store, s.cache, s.logger, handlers.Info{
		Version:   s.app.Version(),
		StartTime: s.startTime,
	})
	s.registerRoutes(r, h)

	return r
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(r chi.Router, h *handlers.Handlers) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/health", h.HandleHealth)

	r.Route(s.config.PathPrefix, func(r chi.Router) {
		r.Get("/health", h.HandleHealth)
		r.Get("/ready", h.HandleReady)
		r.Get("/site", h.HandleSite)

		r.Get("/commands", h.HandleListCommands)
		r.Get("/commands/{id}", h.HandleGetCommand)
		r.Get("/items", h.HandleListItems)
		r.Get("/items/{id}", h.HandleGetItem)
		r.Get("/recipes", h.HandleListRecipes)
		r.Get("/recipes/{id}", h.HandleGetRecipe)
		r.Get("/systems", h.HandleListSystems)
		r.Get("/systems/{id}", h.HandleGetSystem)
		r.Get("/links", h.HandleListLinks)

		r.Get("/facets/{catalog}", h.HandleFacets)
	})

	if s.metrics != nil {
		r.Get("/metrics", s.metrics.Handler().ServeHTTP)
	}
}

// middlewares returns the chain applied to every route, outermost first.
func (s *Server) middlewares() []func(http.Handler) http.Handler {
	cfg := s.config

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID,
		middleware.Logger(s.logger),
	}
	if s.metrics != nil {
		chain = append(chain, s.metrics.Middleware)
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		chain = append(chain, middleware.CORS(corsConfig))
	}

	if s.limiter != nil {
		chain = append(chain, middleware.RateLimit(s.limiter))
	}

	return chain
}
