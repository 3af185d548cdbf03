package handlers

import (
	"net/http"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// CommandDetailResponse is a command reference page.
type CommandDetailResponse struct {
	Command catalogs.CommandDetail    `json:"command"`
	Related []catalogs.RelatedCommand `json:"related"`
}

// HandleListCommands handles GET /api/v1/commands.
// @Summary List commands
// @Description List addon commands filtered by free text and facets
// @Tags commands
// @Produce json
// @Param q query string false "Substring of name or description"
// @Param category query string false "Command category, or all"
// @Param permission query string false "player, admin, or all"
// @Param limit query integer false "Maximum number of results (default: 100, max: 1000)"
// @Param offset query integer false "Result offset for pagination"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/commands [get].
func (h *Handlers) HandleListCommands(w http.ResponseWriter, r *http.Request) {
	listing(h, w, r, h.store.Commands(), nil)
}

// HandleGetCommand handles GET /api/v1/commands/{id}.
// @Summary Get command detail
// @Description Usage, examples, parameters, notes and related commands
// @Tags commands
// @Produce json
// @Param id path string true "Command ID"
// @Success 200 {object} response.Response{data=CommandDetailResponse}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/commands/{id} [get].
func (h *Handlers) HandleGetCommand(w http.ResponseWriter, r *http.Request) {
	detail(h, w, r, h.store.CommandDetails(), func(d catalogs.CommandDetail) any {
		return CommandDetailResponse{
			Command: d,
			Related: h.store.RelatedCommands(d),
		}
	})
}
