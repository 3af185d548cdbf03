package list

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

var linkFacets = []catalogs.FacetName{catalogs.FacetCategory}

// NewLinksCommand creates the list links subcommand. Links are shown
// grouped by category in display order.
func NewLinksCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "links",
		Short:   "List external links",
		Aliases: []string{"link"},
		Args:    cobra.NoArgs,
		Example: `  makecountry list links                         # All links by group
  makecountry list links --category コミュニティ    # One group
  makecountry list links --search discord        # Search`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			q := globals.ParseResources(cmd, linkFacets...).Query()
			if err := q.Validate(store.Links().Facets()); err != nil {
				return err
			}

			groups := store.LinkGroups(q)
			return output.Write(cmd.OutOrStdout(), format(cmd), groups, func(bool) any {
				return table.LinkGroupsToTableData(groups)
			})
		},
	}

	globals.AddResourceFlags(cmd, linkFacets...)
	registerFacetCompletions(cmd, app, (*catalogs.Store).Links, linkFacets)

	return cmd
}
