// Package completion provides the shell completion command.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/completion"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/emoji"
)

// NewCommand creates the completion command. It replaces cobra's generated
// one to add install and uninstall.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Manage shell completions",
		Long: `Generate shell completion scripts to stdout, or install them into the
user's completion directories.

Catalog ids and facet values complete from the loaded content, so
"makecountry list commands <TAB>" offers command ids.`,
		Example: `  source <(makecountry completion bash)   # Load bash completions now
  makecountry completion install          # Install for bash, zsh and fish
  makecountry completion install --zsh    # Install for zsh only
  makecountry completion uninstall        # Remove installed completions`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, shell := range []string{completion.ShellBash, completion.ShellZsh, completion.ShellFish, completion.ShellPowerShell} {
		cmd.AddCommand(&cobra.Command{
			Use:                   shell,
			Short:                 "Generate " + shell + " completion script",
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return completion.Generate(cmd.Root(), shell, cmd.OutOrStdout())
			},
		})
	}

	cmd.AddCommand(newInstallCommand())
	cmd.AddCommand(newUninstallCommand())

	return cmd
}

func newInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shell completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			return forShells(cmd, func(shell string) error {
				return completion.Install(cmd.Root(), shell, home, cmd.OutOrStdout())
			})
		},
	}
	addShellFlags(cmd)
	return cmd
}

func newUninstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove shell completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			return forShells(cmd, func(shell string) error {
				return completion.Uninstall(shell, home, cmd.OutOrStdout())
			})
		},
	}
	addShellFlags(cmd)
	return cmd
}

func addShellFlags(cmd *cobra.Command) {
	for _, shell := range completion.Installable {
		cmd.Flags().Bool(shell, false, "Only "+shell)
	}
}

// forShells runs fn for each shell flag set, or every installable shell when
// none is. Failures are collected so one shell does not block the others.
func forShells(cmd *cobra.Command, fn func(shell string) error) error {
	var selected []string
	for _, shell := range completion.Installable {
		if mustGetBool(cmd, shell) {
			selected = append(selected, shell)
		}
	}
	if len(selected) == 0 {
		selected = completion.Installable
	}

	failed := 0
	for _, shell := range selected {
		if err := fn(shell); err != nil {
			cmd.PrintErrf("%s %s: %v\n", emoji.Error, shell, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d shells failed", failed, len(selected))
	}
	return nil
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
