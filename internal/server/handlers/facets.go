package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karonyt/MakeCountryDocument/internal/server/response"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// FacetResponse is one facet set with its selectable options.
type FacetResponse struct {
	Name    catalogs.FacetName `json:"name"`
	Values  []string           `json:"values"`
	Options []string           `json:"options"`
	Labels  map[string]string  `json:"labels"`
}

// HandleFacets handles GET /api/v1/facets/{catalog}.
// @Summary Get facet sets
// @Description The enumerated filter values of a catalog, wildcard first
// @Tags facets
// @Produce json
// @Param catalog path string true "commands, command-details, items, recipes, systems or links"
// @Success 200 {object} response.Response{data=object}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/facets/{catalog} [get].
func (h *Handlers) HandleFacets(w http.ResponseWriter, r *http.Request) {
	kind := catalogs.Kind(chi.URLParam(r, "catalog"))

	facets, ok := h.store.Facets(kind)
	if !ok {
		response.NotFound(w, "Unknown catalog", string(kind))
		return
	}

	out := make([]FacetResponse, len(facets))
	for i, f := range facets {
		out[i] = FacetResponse{
			Name:    f.Name,
			Values:  f.Values,
			Options: f.Options(),
			Labels:  f.Labels(),
		}
	}

	response.OK(w, map[string]any{
		"catalog": kind,
		"facets":  out,
	})
}
