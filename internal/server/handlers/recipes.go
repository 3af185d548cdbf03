package handlers

import (
	"net/http"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// RecipeResponse is a recipe with its crafting grid rendered to glyphs.
type RecipeResponse struct {
	Recipe catalogs.Recipe `json:"recipe"`
	Grid   [][]string      `json:"grid"`
}

// HandleListRecipes handles GET /api/v1/recipes.
// @Summary List recipes
// @Description List crafting recipes filtered by free text, category and difficulty
// @Tags recipes
// @Produce json
// @Param q query string false "Substring of name or description"
// @Param category query string false "Recipe category, or all"
// @Param difficulty query string false "common, uncommon, rare, legendary, or all"
// @Param limit query integer false "Maximum number of results"
// @Param offset query integer false "Result offset for pagination"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/recipes [get].
func (h *Handlers) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	listing(h, w, r, h.store.Recipes(), func(payload map[string]any) {
		payload["symbols"] = h.store.RecipeSymbols()
	})
}

// HandleGetRecipe handles GET /api/v1/recipes/{id}.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} response.Response{data=RecipeResponse}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/recipes/{id} [get].
func (h *Handlers) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	detail(h, w, r, h.store.Recipes(), func(recipe catalogs.Recipe) any {
		return RecipeResponse{
			Recipe: recipe,
			Grid:   recipe.Grid(h.store.RecipeSymbols()),
		}
	})
}
