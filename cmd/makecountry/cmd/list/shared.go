package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// listing describes one catalog subcommand.
type listing[E catalogs.Cloner[E]] struct {
	resource string
	facets   []catalogs.FacetName
	catalog  func(*catalogs.Store) *catalogs.Catalog[E]
	rows     func(entries []E, wide bool) table.Data
}

// run filters the catalog by the command's flags and writes the result.
func (l listing[E]) run(cmd *cobra.Command, app application.Application) error {
	store, err := app.Store()
	if err != nil {
		return err
	}
	cat := l.catalog(store)

	flags := globals.ParseResources(cmd, l.facets...)
	q := flags.Query()
	if err := q.Validate(cat.Facets()); err != nil {
		return err
	}

	entries := cat.Filter(q)
	total := len(entries)
	if flags.Limit > 0 && len(entries) > flags.Limit {
		entries = entries[:flags.Limit]
	}

	app.Logger().Debug().
		Str("catalog", string(cat.Kind())).
		Str("query", q.Key()).
		Int("total", total).
		Int("shown", len(entries)).
		Msg("Filtered catalog")

	gf := globals.Parse(cmd)
	if !gf.Quiet {
		app.Logger().Info().Msgf("Found %d %s", total, l.resource)
	}

	return output.Write(cmd.OutOrStdout(), output.Format(gf.Format), entries, func(wide bool) any {
		return l.rows(entries, wide)
	})
}

// format returns the output format selected on the command line.
func format(cmd *cobra.Command) output.Format {
	return output.Format(globals.Parse(cmd).Format)
}

// completeIDs completes the id argument of a show subcommand from catalog.
func completeIDs[E catalogs.Cloner[E]](app application.Application, catalog func(*catalogs.Store) *catalogs.Catalog[E]) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store, err := app.Store()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var ids []string
		for _, e := range catalog(store).All() {
			r := e.Common()
			if strings.HasPrefix(r.ID, toComplete) {
				ids = append(ids, r.ID+"\t"+r.Name)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerFacetCompletions completes each facet flag with its declared values.
func registerFacetCompletions[E catalogs.Cloner[E]](cmd *cobra.Command, app application.Application, catalog func(*catalogs.Store) *catalogs.Catalog[E], facets []catalogs.FacetName) {
	for _, name := range facets {
		_ = cmd.RegisterFlagCompletionFunc(string(name), func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			store, err := app.Store()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			f, ok := catalog(store).Facet(name)
			if !ok {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return f.Options(), cobra.ShellCompDirectiveNoFileComp
		})
	}
}
