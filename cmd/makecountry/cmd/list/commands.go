package list

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

var commandFacets = []catalogs.FacetName{catalogs.FacetCategory, catalogs.FacetPermission}

// CommandPage is a command reference page with resolved related commands.
type CommandPage struct {
	Command catalogs.CommandDetail    `json:"command" yaml:"command"`
	Related []catalogs.RelatedCommand `json:"related" yaml:"related"`
}

// NewCommandsCommand creates the list commands subcommand.
func NewCommandsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commands [command-id]",
		Short:   "List addon commands",
		Aliases: []string{"command", "cmd"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  makecountry list commands                       # List all commands
  makecountry list commands --permission admin    # Admin-only commands
  makecountry list commands set-border            # Show a command reference page`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showCommand(cmd, app, args[0])
			}
			return listing[catalogs.Command]{
				resource: "commands",
				facets:   commandFacets,
				catalog:  (*catalogs.Store).Commands,
				rows:     table.CommandsToTableData,
			}.run(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd, commandFacets...)
	registerFacetCompletions(cmd, app, (*catalogs.Store).Commands, commandFacets)
	cmd.ValidArgsFunction = completeIDs(app, (*catalogs.Store).CommandDetails)

	return cmd
}

// showCommand prints the reference page of one command.
func showCommand(cmd *cobra.Command, app application.Application, id string) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	detail, err := store.CommandDetails().Get(id)
	if err != nil {
		return err
	}
	page := CommandPage{Command: detail, Related: store.RelatedCommands(detail)}

	return output.Write(cmd.OutOrStdout(), format(cmd), page, func(bool) any {
		return table.CommandDetailToTableData(page.Command, page.Related)
	})
}
