package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestCORS tests origin handling.
func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		config         CORSConfig
		origin         string
		expectedOrigin string
		expectVary     bool
	}{
		{
			name:           "allow all",
			config:         CORSConfig{AllowAll: true},
			origin:         "https://example.com",
			expectedOrigin: "*",
		},
		{
			name:           "no origins configured",
			config:         CORSConfig{},
			origin:         "https://example.com",
			expectedOrigin: "*",
		},
		{
			name:           "specific origin allowed",
			config:         CORSConfig{AllowedOrigins: []string{"https://makecountry.example"}},
			origin:         "https://makecountry.example",
			expectedOrigin: "https://makecountry.example",
			expectVary:     true,
		},
		{
			name:           "origin not allowed",
			config:         CORSConfig{AllowedOrigins: []string{"https://makecountry.example"}},
			origin:         "https://evil.example",
			expectedOrigin: "",
		},
		{
			name:           "wildcard entry echoes origin",
			config:         DefaultCORSConfig(),
			origin:         "https://any.example",
			expectedOrigin: "https://any.example",
			expectVary:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			CORS(tt.config)(handler).ServeHTTP(rec, req)

			if !called {
				t.Error("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.expectedOrigin {
				t.Errorf("expected Allow-Origin %q, got %q", tt.expectedOrigin, got)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tt.expectVary {
				t.Errorf("expected Vary: Origin = %v, got %v", tt.expectVary, got)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != RequestIDHeader {
				t.Errorf("expected Expose-Headers %q, got %q", RequestIDHeader, got)
			}
		})
	}
}

// TestCORS_Preflight tests that OPTIONS requests short-circuit.
func TestCORS_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/items", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	CORS(DefaultCORSConfig())(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, HEAD, OPTIONS" {
		t.Errorf("unexpected Allow-Methods %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("unexpected Max-Age %q", got)
	}
}
