package list

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

var recipeFacets = []catalogs.FacetName{catalogs.FacetCategory, catalogs.FacetDifficulty}

// RecipePage is a recipe with its crafting grid rendered to glyphs.
type RecipePage struct {
	Recipe catalogs.Recipe `json:"recipe" yaml:"recipe"`
	Grid   [][]string      `json:"grid" yaml:"grid"`
}

// NewRecipesCommand creates the list recipes subcommand.
func NewRecipesCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes [recipe-id]",
		Short:   "List crafting recipes",
		Aliases: []string{"recipe"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  makecountry list recipes                          # List all recipes
  makecountry list recipes --difficulty legendary   # Filter by difficulty
  makecountry list recipes royal-crown              # Show a recipe and its grid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showRecipe(cmd, app, args[0])
			}
			return listing[catalogs.Recipe]{
				resource: "recipes",
				facets:   recipeFacets,
				catalog:  (*catalogs.Store).Recipes,
				rows:     table.RecipesToTableData,
			}.run(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd, recipeFacets...)
	registerFacetCompletions(cmd, app, (*catalogs.Store).Recipes, recipeFacets)
	cmd.ValidArgsFunction = completeIDs(app, (*catalogs.Store).Recipes)

	return cmd
}

func showRecipe(cmd *cobra.Command, app application.Application, id string) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	recipe, err := store.Recipes().Get(id)
	if err != nil {
		return err
	}
	page := RecipePage{Recipe: recipe, Grid: recipe.Grid(store.RecipeSymbols())}

	return output.Write(cmd.OutOrStdout(), format(cmd), page, func(bool) any {
		return []table.Data{
			table.RecipesToTableData([]catalogs.Recipe{recipe}, true),
			table.GridToTableData(page.Grid),
		}
	})
}
