// Package catalogs holds the MakeCountry reference content: commands, command
// details, items, recipes, systems and links. Each catalog is an immutable,
// ordered sequence of entries built once at startup, with a free-text and
// facet filter and an identifier lookup on top.
//
// Example usage:
//
//	store, err := catalogs.NewEmbedded()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q := catalogs.NewQuery("country").With(catalogs.FacetCategory, "国家管理")
//	for _, cmd := range store.Commands().Filter(q) {
//	    fmt.Println(cmd.Name)
//	}
//
//	detail, err := store.CommandDetails().Get("create-country")
//	if errors.IsNotFound(err) {
//	    // render the not found view
//	}
package catalogs

import (
	"fmt"
	"slices"

	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// Kind identifies one of the catalogs.
type Kind string

// Catalog kinds.
const (
	KindCommands       Kind = "commands"
	KindCommandDetails Kind = "command-details"
	KindItems          Kind = "items"
	KindRecipes        Kind = "recipes"
	KindSystems        Kind = "systems"
	KindLinks          Kind = "links"
)

// Kinds lists every catalog kind in navigation order.
func Kinds() []Kind {
	return []Kind{KindCommands, KindCommandDetails, KindItems, KindRecipes, KindSystems, KindLinks}
}

// Resource returns the singular name used in error messages.
func (k Kind) Resource() string {
	switch k {
	case KindCommands:
		return "command"
	case KindCommandDetails:
		return "command detail"
	case KindItems:
		return "item"
	case KindRecipes:
		return "recipe"
	case KindSystems:
		return "system"
	case KindLinks:
		return "link"
	default:
		return string(k)
	}
}

// Catalog is a read-only ordered sequence of entries of one kind.
// It is safe for concurrent use; accessors hand out copies.
type Catalog[E Cloner[E]] struct {
	kind    Kind
	entries []E
	facets  []Facet
}

// NewCatalog validates entries against facets and returns the catalog.
//
// Every ID must be a unique kebab-case token. For every declared facet, each
// entry must carry the facet and its value must be a member of the set.
func NewCatalog[E Cloner[E]](kind Kind, entries []E, facets []Facet) (*Catalog[E], error) {
	if err := validateFacets(facets); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		id := e.Common().ID
		if !idPattern.MatchString(id) {
			return nil, errors.NewValidationError("id", id,
				fmt.Sprintf("%s entry %d: id must be kebab-case ASCII", kind, i))
		}
		if _, dup := seen[id]; dup {
			return nil, errors.NewValidationError("id", id,
				fmt.Sprintf("%s: duplicate id %q", kind, id))
		}
		seen[id] = struct{}{}

		for _, f := range facets {
			v, ok := e.FacetValue(f.Name)
			if !ok {
				return nil, errors.NewValidationError(string(f.Name), nil,
					fmt.Sprintf("%s %q has no %s", kind.Resource(), id, f.Name))
			}
			if !f.Contains(v) {
				return nil, errors.NewValidationError(string(f.Name), v,
					fmt.Sprintf("%s %q: %q is not a declared %s", kind.Resource(), id, v, f.Name))
			}
		}
	}

	c := &Catalog[E]{
		kind:    kind,
		entries: make([]E, len(entries)),
		facets:  make([]Facet, len(facets)),
	}
	for i, e := range entries {
		c.entries[i] = e.Clone()
	}
	for i, f := range facets {
		c.facets[i] = f.clone()
	}
	return c, nil
}

func validateFacets(facets []Facet) error {
	names := make(map[FacetName]struct{}, len(facets))
	for _, f := range facets {
		if _, dup := names[f.Name]; dup {
			return errors.NewValidationError("facets", f.Name, "facet declared twice")
		}
		names[f.Name] = struct{}{}
		for _, v := range f.Values {
			if IsWildcard(v) {
				return errors.NewValidationError(string(f.Name), v, "wildcard cannot be a facet value")
			}
		}
	}
	return nil
}

// Kind returns the catalog kind.
func (c *Catalog[E]) Kind() Kind { return c.kind }

// Len returns the number of entries.
func (c *Catalog[E]) Len() int { return len(c.entries) }

// All returns a copy of every entry in catalog order.
func (c *Catalog[E]) All() []E {
	return cloneAll(c.entries)
}

// Facets returns a copy of the catalog's facet sets.
func (c *Catalog[E]) Facets() []Facet {
	out := make([]Facet, len(c.facets))
	for i, f := range c.facets {
		out[i] = f.clone()
	}
	return out
}

// Facet returns the named facet set.
func (c *Catalog[E]) Facet(name FacetName) (Facet, bool) {
	i := slices.IndexFunc(c.facets, func(f Facet) bool { return f.Name == name })
	if i < 0 {
		return Facet{}, false
	}
	return c.facets[i].clone(), true
}

// Filter returns copies of the entries matching q, in catalog order.
func (c *Catalog[E]) Filter(q Query) []E {
	return cloneAll(Filter(c.entries, q))
}

// Lookup returns a copy of the entry with the given ID.
func (c *Catalog[E]) Lookup(id string) (E, bool) {
	e, ok := Lookup(c.entries, id)
	if !ok {
		return e, false
	}
	return e.Clone(), true
}

// Get is Lookup reporting a miss as *errors.NotFoundError.
func (c *Catalog[E]) Get(id string) (E, error) {
	e, ok := c.Lookup(id)
	if !ok {
		return e, errors.NewNotFoundError(c.kind.Resource(), id)
	}
	return e, nil
}

func cloneAll[E Cloner[E]](entries []E) []E {
	out := make([]E, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
