package list

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

var systemFacets = []catalogs.FacetName{catalogs.FacetCategory}

// NewSystemsCommand creates the list systems subcommand.
func NewSystemsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "systems [system-id]",
		Short:   "List nation systems",
		Aliases: []string{"system"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  makecountry list systems                  # List all systems
  makecountry list systems --category 外交    # Filter by category
  makecountry list systems border-system    # Show one system`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showSystem(cmd, app, args[0])
			}
			return listing[catalogs.System]{
				resource: "systems",
				facets:   systemFacets,
				catalog:  (*catalogs.Store).Systems,
				rows:     table.SystemsToTableData,
			}.run(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd, systemFacets...)
	registerFacetCompletions(cmd, app, (*catalogs.Store).Systems, systemFacets)
	cmd.ValidArgsFunction = completeIDs(app, (*catalogs.Store).Systems)

	return cmd
}

func showSystem(cmd *cobra.Command, app application.Application, id string) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	sys, err := store.Systems().Get(id)
	if err != nil {
		return err
	}

	return output.Write(cmd.OutOrStdout(), format(cmd), sys, func(bool) any {
		rows := [][]string{
			{"Name", sys.Name},
			{"Category", sys.Category},
			{"Description", sys.Description},
		}
		for _, f := range sys.Features {
			rows = append(rows, []string{"Feature", f})
		}
		rows = append(rows, []string{"Details", table.OrPlaceholder(sys.Details)})
		return table.Data{Headers: []string{"Property", "Value"}, Rows: rows}
	})
}
