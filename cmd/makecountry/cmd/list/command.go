// Package list provides the list command and its per-catalog subcommands.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List reference content",
		Long: `List displays entries of the MakeCountry reference catalogs.

Available subcommands:
  commands    - addon commands and their reference pages
  items       - special items and their rarity
  recipes     - crafting recipes with their grids
  systems     - nation systems
  links       - download, support and community links
  facets      - the filter values each catalog accepts`,
		Example: `  makecountry list commands                         # List all commands
  makecountry list commands --search country        # Search by name or description
  makecountry list commands --category 領土管理       # Filter by category
  makecountry list commands create-country          # Show a command reference page
  makecountry list items --rarity legendary         # Filter items by rarity
  makecountry list recipes royal-crown              # Show a recipe with its grid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewCommandsCommand(app))
	cmd.AddCommand(NewItemsCommand(app))
	cmd.AddCommand(NewRecipesCommand(app))
	cmd.AddCommand(NewSystemsCommand(app))
	cmd.AddCommand(NewLinksCommand(app))
	cmd.AddCommand(NewFacetsCommand(app))

	return cmd
}
