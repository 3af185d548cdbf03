package handlers

import (
	"net/http"
	"time"

	"github.com/karonyt/MakeCountryDocument/internal/server/response"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Liveness check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "makecountry-api",
		"version": h.info.Version,
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check with catalog sizes and cache statistics
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	if h.store == nil {
		response.ServiceUnavailable(w, "Catalogs not loaded")
		return
	}

	response.OK(w, map[string]any{
		"status":   "ready",
		"catalogs": h.store.Counts(),
		"cache":    h.cache.GetStats(),
		"uptime":   time.Since(h.info.StartTime).Round(time.Second).String(),
	})
}

// HandleSite handles GET /api/v1/site.
// @Summary Site summary
// @Description Addon version, supported game versions, navigation and features
// @Tags site
// @Produce json
// @Success 200 {object} response.Response{data=catalogs.Site}
// @Router /api/v1/site [get].
func (h *Handlers) HandleSite(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, h.store.Site())
}
