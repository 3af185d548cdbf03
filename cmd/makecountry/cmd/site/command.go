// Package site provides the site command, the home page summary of the addon.
package site

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/application"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/globals"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/output"
	"github.com/karonyt/MakeCountryDocument/internal/cmd/table"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// NewCommand creates the site command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "site",
		GroupID: "core",
		Aliases: []string{"about"},
		Short:   "Show the addon summary and catalog sizes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			site := store.Site()
			counts := store.Counts()
			f := output.Format(globals.Parse(cmd).Format)

			return output.Write(cmd.OutOrStdout(), f, site, func(bool) any {
				return []table.Data{siteTable(site), countsTable(counts)}
			})
		},
	}
}

func siteTable(s catalogs.Site) table.Data {
	rows := [][]string{
		{"Title", s.Title},
		{"Tagline", s.Tagline},
		{"Version", s.Version},
		{"Game", s.GameVersion},
		{"Language", s.Language},
		{"Supported", table.JoinOrPlaceholder(s.SupportedVersions, ", ")},
		{"Unsupported", table.JoinOrPlaceholder(s.UnsupportedVersions, ", ")},
	}
	for _, f := range s.Features {
		rows = append(rows, []string{"Feature", f.Title})
	}
	return table.Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

func countsTable(counts map[catalogs.Kind]int) table.Data {
	rows := make([][]string, 0, len(counts))
	for _, k := range catalogs.Kinds() {
		rows = append(rows, []string{string(k), strconv.Itoa(counts[k])})
	}
	return table.Data{
		Headers:         []string{"Catalog", "Entries"},
		Rows:            rows,
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
	}
}
