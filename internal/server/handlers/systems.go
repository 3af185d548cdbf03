package handlers

import (
	"net/http"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// HandleListSystems handles GET /api/v1/systems.
// @Summary List nation systems
// @Tags systems
// @Produce json
// @Param q query string false "Substring of name or description"
// @Param category query string false "System group, or all"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/systems [get].
func (h *Handlers) HandleListSystems(w http.ResponseWriter, r *http.Request) {
	listing(h, w, r, h.store.Systems(), nil)
}

// HandleGetSystem handles GET /api/v1/systems/{id}.
// @Summary Get nation system
// @Tags systems
// @Produce json
// @Param id path string true "System ID"
// @Success 200 {object} response.Response{data=catalogs.System}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/systems/{id} [get].
func (h *Handlers) HandleGetSystem(w http.ResponseWriter, r *http.Request) {
	detail(h, w, r, h.store.Systems(), func(s catalogs.System) any { return s })
}
