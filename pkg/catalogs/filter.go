package catalogs

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// Query is the search state a listing view passes in on every change: free
// text matched against name and description, plus facet selections.
type Query struct {
	Text   string
	Facets map[FacetName]string
}

// NewQuery creates a query with the given free text and no facet selection.
func NewQuery(text string) Query {
	return Query{Text: text}
}

// With returns a copy of q with the facet selection set.
func (q Query) With(name FacetName, value string) Query {
	facets := make(map[FacetName]string, len(q.Facets)+1)
	maps.Copy(facets, q.Facets)
	facets[name] = value
	return Query{Text: q.Text, Facets: facets}
}

// IsEmpty reports whether the query narrows nothing.
func (q Query) IsEmpty() bool {
	if strings.TrimSpace(q.Text) != "" {
		return false
	}
	for _, v := range q.Facets {
		if !IsWildcard(v) {
			return false
		}
	}
	return true
}

// Key returns a canonical string for q, usable as a cache key. Components
// are query-escaped, so free text cannot pose as a facet selection.
func (q Query) Key() string {
	v := url.Values{}
	v.Set("q", strings.TrimSpace(q.Text))
	for name, sel := range q.Facets {
		if !IsWildcard(sel) {
			v.Set(string(name), sel)
		}
	}
	return v.Encode()
}

// Validate checks that every selected facet exists in facets and that every
// non-wildcard value is a member of its set.
func (q Query) Validate(facets []Facet) error {
	names := slices.Sorted(maps.Keys(q.Facets))
	for _, name := range names {
		i := slices.IndexFunc(facets, func(f Facet) bool { return f.Name == name })
		if i < 0 {
			return errors.NewValidationError(string(name), q.Facets[name], "unknown facet")
		}
		v := q.Facets[name]
		if !IsWildcard(v) && !facets[i].Contains(v) {
			return errors.NewValidationError(string(name), v,
				fmt.Sprintf("%q is not one of %s", v, strings.Join(facets[i].Values, ", ")))
		}
	}
	return nil
}

// Filter returns the entries matching q, in their original order.
//
// An entry matches when the folded query text occurs in its folded name or
// description, and when, for every facet selected with a non-wildcard value,
// the entry's value equals the selection exactly. The result is never nil.
func Filter[E Entry](entries []E, q Query) []E {
	if q.IsEmpty() {
		return append(make([]E, 0, len(entries)), entries...)
	}

	needle := fold(strings.TrimSpace(q.Text))
	out := make([]E, 0, len(entries))
	for _, e := range entries {
		if matchesText(e.Common(), needle) && matchesFacets(e, q.Facets) {
			out = append(out, e)
		}
	}
	return out
}

func matchesText(r Record, needle string) bool {
	return containsFolded(r.Name, needle) || containsFolded(r.Description, needle)
}

func matchesFacets(e Entry, facets map[FacetName]string) bool {
	for name, want := range facets {
		if IsWildcard(want) {
			continue
		}
		got, ok := e.FacetValue(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}
