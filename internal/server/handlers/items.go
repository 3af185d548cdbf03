package handlers

import (
	"net/http"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// HandleListItems handles GET /api/v1/items.
// @Summary List items
// @Description List addon items filtered by free text, category and rarity
// @Tags items
// @Produce json
// @Param q query string false "Substring of name or description"
// @Param category query string false "Item category, or all"
// @Param rarity query string false "common, uncommon, rare, legendary, or all"
// @Param limit query integer false "Maximum number of results"
// @Param offset query integer false "Result offset for pagination"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/items [get].
func (h *Handlers) HandleListItems(w http.ResponseWriter, r *http.Request) {
	listing(h, w, r, h.store.Items(), nil)
}

// HandleGetItem handles GET /api/v1/items/{id}.
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Response{data=catalogs.Item}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/items/{id} [get].
func (h *Handlers) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	detail(h, w, r, h.store.Items(), func(item catalogs.Item) any { return item })
}
