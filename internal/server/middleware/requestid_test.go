package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/karonyt/MakeCountryDocument/pkg/logging"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "well formed id kept", incoming: "req-123.abc_DEF", keep: true},
		{name: "invalid characters replaced", incoming: "bad id\nInjected: yes", keep: false},
		{name: "too long replaced", incoming: strings.Repeat("a", 65), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromContext string
			handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				fromContext = logging.RequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID(handler).ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got != fromContext {
				t.Errorf("header %q and context %q differ", got, fromContext)
			}

			if tt.keep {
				if got != tt.incoming {
					t.Errorf("expected incoming id %q to be kept, got %q", tt.incoming, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected generated uuid, got %q: %v", got, err)
			}
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]bool)
	for range 50 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}
