// Package filter turns API query parameters into catalog queries and
// pagination windows.
package filter

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// Pagination defaults.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Request is the parsed form of a listing request.
type Request struct {
	Query  catalogs.Query
	Limit  int
	Offset int
}

// Key returns a canonical cache key for the request.
func (r Request) Key() string {
	return r.Query.Key() + "&limit=" + strconv.Itoa(r.Limit) + "&offset=" + strconv.Itoa(r.Offset)
}

// Parse extracts the search text, facet selections and pagination from r
// and validates the facets against the catalog's declared sets.
//
// A limit that is absent, not an integer, or below one means DefaultLimit;
// larger limits are capped at MaxLimit. A negative offset means zero.
//
// The search text is read from "q", falling back to "search". Any parameter
// named after a facet is a selection; one the catalog does not declare is an
// error.
func Parse(r *http.Request, facets []catalogs.Facet) (Request, error) {
	return ParseValues(r.URL.Query(), facets)
}

// ParseValues is Parse over already decoded query values.
func ParseValues(values url.Values, facets []catalogs.Facet) (Request, error) {
	text := values.Get("q")
	if text == "" {
		text = values.Get("search")
	}

	q := catalogs.NewQuery(text)
	for _, name := range catalogs.FacetNames() {
		if values.Has(string(name)) {
			q = q.With(name, values.Get(string(name)))
		}
	}
	if err := q.Validate(facets); err != nil {
		return Request{}, err
	}

	// A limit below one selects the default page size.
	limit := parseIntOrDefault(values.Get("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	return Request{
		Query:  q,
		Limit:  limit,
		Offset: max(parseIntOrDefault(values.Get("offset"), 0), 0),
	}, nil
}

// PageInfo describes a pagination window over a filtered sequence.
type PageInfo struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// Window returns the slice of entries the request's limit and offset select.
func Window[E any](entries []E, req Request) ([]E, PageInfo) {
	total := len(entries)
	start := min(req.Offset, total)
	end := min(start+req.Limit, total)

	page := entries[start:end]
	return page, PageInfo{
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
		Count:  len(page),
	}
}

// parseIntOrDefault parses integer or returns default value.
func parseIntOrDefault(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}
