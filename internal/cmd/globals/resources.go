package globals

import (
	"github.com/spf13/cobra"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// ResourceFlags holds the search and facet flags of a listing command.
type ResourceFlags struct {
	Search string
	Facets map[catalogs.FacetName]string
	Limit  int
}

// Query returns the catalog query the flags describe.
func (f *ResourceFlags) Query() catalogs.Query {
	q := catalogs.NewQuery(f.Search)
	for name, v := range f.Facets {
		q = q.With(name, v)
	}
	return q
}

// AddResourceFlags adds --search, --limit and one flag per facet to cmd.
func AddResourceFlags(cmd *cobra.Command, facets ...catalogs.FacetName) {
	cmd.Flags().StringP("search", "s", "",
		"Search term matched against name and description")
	cmd.Flags().IntP("limit", "l", 0,
		"Limit number of results")
	for _, name := range facets {
		cmd.Flags().String(string(name), "",
			"Filter by "+string(name)+" (all for every value)")
	}
}

// ParseResources extracts resource flags from a command.
// The command must have had AddResourceFlags called on it, otherwise this will panic.
func ParseResources(cmd *cobra.Command, facets ...catalogs.FacetName) *ResourceFlags {
	flags := &ResourceFlags{
		Search: mustGetString(cmd, "search"),
		Limit:  mustGetInt(cmd, "limit"),
		Facets: make(map[catalogs.FacetName]string),
	}
	for _, name := range facets {
		if cmd.Flags().Changed(string(name)) {
			flags.Facets[name] = mustGetString(cmd, string(name))
		}
	}
	return flags
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
