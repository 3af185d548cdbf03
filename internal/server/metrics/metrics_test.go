package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	m := NewHTTPMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/commands/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/commands/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/commands/{id}", "404"))
	assert.Equal(t, float64(3), got)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.activeRequests))
}

func TestMiddlewareUnknownRoute(t *testing.T) {
	m := NewHTTPMetrics()
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, unknownRoute, "200"))
	assert.Equal(t, float64(1), got)
}

func TestNilMetricsPassThrough(t *testing.T) {
	var m *HTTPMetrics
	called := false
	handler := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewHTTPMetrics()
	m.requestsTotal.WithLabelValues(http.MethodGet, "/health", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "makecountry_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
