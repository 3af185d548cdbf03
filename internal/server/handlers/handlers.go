// Package handlers provides HTTP request handlers for the API.
//
// Handlers are organized by catalog:
//
//   - commands.go: command listing and command detail pages
//   - items.go: item listing and lookup
//   - recipes.go: recipe listing and lookup with rendered grids
//   - systems.go: nation system listing and lookup
//   - links.go: grouped external links
//   - facets.go: facet sets and their display labels
//   - health.go: liveness, readiness and the site summary
//
// Listing handlers share one flow: parse and validate the query, check the
// cache, filter, window, cache the result and respond.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/karonyt/MakeCountryDocument/internal/server/cache"
	"github.com/karonyt/MakeCountryDocument/internal/server/filter"
	"github.com/karonyt/MakeCountryDocument/internal/server/response"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
	"github.com/karonyt/MakeCountryDocument/pkg/logging"
)

// Info is static service metadata reported by the health endpoints.
type Info struct {
	Version   string
	StartTime time.Time
}

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	store  *catalogs.Store
	cache  *cache.Cache
	logger *zerolog.Logger
	info   Info
}

// New creates a new Handlers instance.
func New(store *catalogs.Store, cache *cache.Cache, logger *zerolog.Logger, info Info) *Handlers {
	return &Handlers{
		store:  store,
		cache:  cache,
		logger: logger,
		info:   info,
	}
}

// listing writes the filtered, windowed entries of cat under the catalog's
// kind, with pagination. extend may add fields to the payload.
func listing[E catalogs.Cloner[E]](h *Handlers, w http.ResponseWriter, r *http.Request, cat *catalogs.Catalog[E], extend func(map[string]any)) {
	req, err := filter.Parse(r, cat.Facets())
	if err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("Rejected listing query")
		response.ErrorFromType(w, err)
		return
	}

	kind := string(cat.Kind())
	result := h.cache.GetOrCompute(cache.Key(kind, req.Key()), func() any {
		page, info := filter.Window(cat.Filter(req.Query), req)
		payload := map[string]any{
			kind:         page,
			"pagination": info,
		}
		if extend != nil {
			extend(payload)
		}
		return payload
	})

	response.OK(w, result)
}

// detail looks up the {id} route parameter in cat and writes view(entry).
func detail[E catalogs.Cloner[E]](h *Handlers, w http.ResponseWriter, r *http.Request, cat *catalogs.Catalog[E], view func(E) any) {
	id := chi.URLParam(r, "id")
	key := cache.Key(string(cat.Kind())+"/id", id)
	if cached, ok := h.cache.Get(key); ok {
		response.OK(w, cached)
		return
	}

	entry, err := cat.Get(id)
	if err != nil {
		logging.FromContext(r.Context()).Debug().
			Str("catalog", string(cat.Kind())).
			Str("id", id).
			Msg("Entry not found")
		response.ErrorFromType(w, err)
		return
	}

	result := view(entry)
	h.cache.Set(key, result)
	response.OK(w, result)
}
