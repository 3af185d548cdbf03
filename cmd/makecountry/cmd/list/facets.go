package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// NewFacetsCommand creates the list facets subcommand.
func NewFacetsCommand(app application.Application) *cobra.Command {
	kinds := make([]string, 0, len(catalogs.Kinds()))
	for _, k := range catalogs.Kinds() {
		kinds = append(kinds, string(k))
	}

	return &cobra.Command{
		Use:       "facets <catalog>",
		Short:     "Show the filter values a catalog accepts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		Example:   "  makecountry list facets items",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			facets, ok := store.Facets(catalogs.Kind(args[0]))
			if !ok {
				return errors.NewValidationError("catalog", args[0],
					"must be one of "+strings.Join(kinds, ", "))
			}

			return output.Write(cmd.OutOrStdout(), format(cmd), facets, func(bool) any {
				return table.FacetsToTableData(facets)
			})
		},
	}
}
