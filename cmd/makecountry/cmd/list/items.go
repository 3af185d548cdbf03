package list

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

var itemFacets = []catalogs.FacetName{catalogs.FacetCategory, catalogs.FacetRarity}

// NewItemsCommand creates the list items subcommand.
func NewItemsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items [item-id]",
		Short:   "List special items",
		Aliases: []string{"item"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  makecountry list items                    # List all items
  makecountry list items --rarity rare      # Filter by rarity
  makecountry list items war-banner         # Show one item`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showItem(cmd, app, args[0])
			}
			return listing[catalogs.Item]{
				resource: "items",
				facets:   itemFacets,
				catalog:  (*catalogs.Store).Items,
				rows:     table.ItemsToTableData,
			}.run(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd, itemFacets...)
	registerFacetCompletions(cmd, app, (*catalogs.Store).Items, itemFacets)
	cmd.ValidArgsFunction = completeIDs(app, (*catalogs.Store).Items)

	return cmd
}

func showItem(cmd *cobra.Command, app application.Application, id string) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	item, err := store.Items().Get(id)
	if err != nil {
		return err
	}

	return output.Write(cmd.OutOrStdout(), format(cmd), item, func(bool) any {
		return table.ItemsToTableData([]catalogs.Item{item}, true)
	})
}
