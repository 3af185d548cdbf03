// Package completion writes and removes shell completion scripts for the
// makecountry CLI.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/emoji"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Installable lists the shells Install knows a completion directory for.
var Installable = []string{ShellBash, ShellZsh, ShellFish}

const binary = "makecountry"

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

// Path returns where the completion file for shell is installed. A Homebrew
// prefix in the environment wins over home.
func Path(shell, home string) (string, error) {
	brew := os.Getenv("HOMEBREW_PREFIX")

	switch shell {
	case ShellBash:
		if brew != "" {
			return filepath.Join(brew, "etc", "bash_completion.d", binary), nil
		}
		return filepath.Join(home, ".bash_completion.d", binary), nil
	case ShellZsh:
		if brew != "" {
			return filepath.Join(brew, "share", "zsh", "site-functions", "_"+binary), nil
		}
		return filepath.Join(home, ".zsh", "completions", "_"+binary), nil
	case ShellFish:
		if brew != "" {
			return filepath.Join(brew, "share", "fish", "vendor_completions.d", binary+".fish"), nil
		}
		return filepath.Join(home, ".config", "fish", "completions", binary+".fish"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// Install writes the completion script for shell under home and reports
// progress to out.
func Install(root *cobra.Command, shell, home string, out io.Writer) (err error) {
	if !slices.Contains(Installable, shell) {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	target, err := Path(shell, home)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}

	file, err := os.Create(target) // #nosec G304 - path built by Path
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := Generate(root, shell, file); err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}

	fmt.Fprintf(out, "%s %s completions installed to: %s\n", emoji.Success, shell, target)
	return nil
}

// Uninstall removes the completion file Install wrote for shell. A missing
// file is not an error.
func Uninstall(shell, home string, out io.Writer) error {
	target, err := Path(shell, home)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		fmt.Fprintf(out, "No %s completions found at: %s\n", shell, target)
		return nil
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("could not remove %s: %w", target, err)
	}
	fmt.Fprintf(out, "%s Removed %s completions from: %s\n", emoji.Success, shell, target)
	return nil
}
