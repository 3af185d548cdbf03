// Package validate provides the validate command, which loads catalog
// content and reports problems before it is served.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/emoji"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// Report is the structured result of a validation run.
type Report struct {
	Valid  bool                  `json:"valid" yaml:"valid"`
	Counts map[catalogs.Kind]int `json:"counts" yaml:"counts"`
	Issues []catalogs.Issue      `json:"issues" yaml:"issues"`
}

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate catalog content",
		Long: `Validate loads every catalog file and checks identifiers, facet values
and cross references.

Load errors (missing files, malformed YAML, duplicate or non kebab-case ids,
facet values outside their declared set) fail the command. Dangling
references are reported as warnings; the site renders them with a fallback.
With --strict, warnings fail the command too.`,
		Example: `  makecountry validate                         # Validate the embedded content
  makecountry validate --content-dir ./content # Validate a content directory
  makecountry validate --strict -o json        # Fail on warnings, JSON report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			return run(cmd, app, strict)
		},
	}

	cmd.Flags().Bool("strict", false, "Treat warnings as errors")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, strict bool) error {
	logger := app.Logger()
	gf := globals.Parse(cmd)
	f := output.Format(gf.Format)

	store, err := app.Store()
	if err != nil {
		if f.IsTable() {
			cmd.PrintErrf("%s %v\n", emoji.Error, err)
		}
		return err
	}

	issues := store.Lint()
	report := Report{
		Valid:  len(issues) == 0 || !strict,
		Counts: store.Counts(),
		Issues: issues,
	}
	if report.Issues == nil {
		report.Issues = []catalogs.Issue{}
	}

	for _, issue := range issues {
		logger.Warn().
			Str("catalog", string(issue.Kind)).
			Str("id", issue.ID).
			Msg(issue.Message)
	}

	if f.IsTable() {
		printReport(cmd.OutOrStdout(), report)
	} else if err := output.NewFormatter(f).Format(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.Valid {
		return fmt.Errorf("validation failed: %d warnings in strict mode", len(issues))
	}
	return nil
}

func printReport(w io.Writer, r Report) {
	for _, k := range catalogs.Kinds() {
		fmt.Fprintf(w, "%s %-16s %d entries\n", emoji.Success, k, r.Counts[k])
	}
	for _, issue := range r.Issues {
		fmt.Fprintf(w, "%s %s\n", emoji.Warning, issue)
	}
	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "All catalogs are valid")
		return
	}
	fmt.Fprintf(w, "%d warnings\n", len(r.Issues))
}
