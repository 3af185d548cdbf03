package app

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/cmd/makecountry/cmd/completion"
	"github.com/karonyt/MakeCountryDocument/cmd/makecountry/cmd/list"
	"github.com/karonyt/MakeCountryDocument/cmd/makecountry/cmd/serve"
	"github.com/karonyt/MakeCountryDocument/cmd/makecountry/cmd/site"
	"github.com/karonyt/MakeCountryDocument/cmd/makecountry/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(site.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("makecountry %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
