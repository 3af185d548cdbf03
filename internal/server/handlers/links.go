package handlers

import (
	"net/http"

	"github.com/karonyt/MakeCountryDocument/internal/server/cache"
	"github.com/karonyt/MakeCountryDocument/internal/server/filter"
	"github.com/karonyt/MakeCountryDocument/internal/server/response"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// LinksResponse is the links page: matching links grouped by category.
type LinksResponse struct {
	Groups []catalogs.LinkGroup `json:"groups"`
	Total  int                  `json:"total"`
}

// HandleListLinks handles GET /api/v1/links.
// @Summary List links
// @Description External links grouped by category in display order
// @Tags links
// @Produce json
// @Param q query string false "Substring of name or description"
// @Param category query string false "Link group, or all"
// @Success 200 {object} response.Response{data=LinksResponse}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/links [get].
func (h *Handlers) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	req, err := filter.Parse(r, h.store.Links().Facets())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	result := h.cache.GetOrCompute(cache.Key("links/groups", req.Query.Key()), func() any {
		groups := h.store.LinkGroups(req.Query)
		total := 0
		for _, g := range groups {
			total += len(g.Items)
		}
		return LinksResponse{Groups: groups, Total: total}
	})

	response.OK(w, result)
}
