package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/karonyt/MakeCountryDocument/internal/server/response"
	"github.com/karonyt/MakeCountryDocument/pkg/logging"
)

// TestChain tests middleware composition order.
func TestChain(t *testing.T) {
	tests := []struct {
		name              string
		numMiddleware     int
		expectedCallOrder []string
	}{
		{name: "no middleware", numMiddleware: 0, expectedCallOrder: []string{"handler"}},
		{name: "single middleware", numMiddleware: 1, expectedCallOrder: []string{"m1", "handler"}},
		{name: "three middleware", numMiddleware: 3, expectedCallOrder: []string{"m1", "m2", "m3", "handler"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var callOrder []string

			middlewares := make([]func(http.Handler) http.Handler, tt.numMiddleware)
			for i := range tt.numMiddleware {
				name := "m" + string(rune('1'+i))
				middlewares[i] = func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						callOrder = append(callOrder, name)
						next.ServeHTTP(w, r)
					})
				}
			}

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				callOrder = append(callOrder, "handler")
				w.WriteHeader(http.StatusOK)
			})

			Chain(middlewares...)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			if strings.Join(callOrder, ",") != strings.Join(tt.expectedCallOrder, ",") {
				t.Errorf("expected call order %v, got %v", tt.expectedCallOrder, callOrder)
			}
		})
	}
}

// TestLogger tests request logging and the request-scoped logger.
func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success", status: http.StatusOK, expectedLevel: "info"},
		{name: "client error", status: http.StatusNotFound, expectedLevel: "info"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)

			var scoped bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Debug().Msg("inside handler")
				scoped = true
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil)
			Chain(RequestID, Logger(tl.Logger))(handler).ServeHTTP(httptest.NewRecorder(), req)

			if !scoped {
				t.Fatal("handler was not called")
			}

			var entry map[string]any
			lines := strings.Split(strings.TrimSpace(tl.Output()), "\n")
			if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
				t.Fatalf("failed to parse log entry: %v", err)
			}

			if entry["level"] != tt.expectedLevel {
				t.Errorf("expected level %q, got %v", tt.expectedLevel, entry["level"])
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("expected status %d, got %v", tt.status, entry["status"])
			}
			if entry["path"] != "/api/v1/commands" {
				t.Errorf("expected path /api/v1/commands, got %v", entry["path"])
			}
			if id, _ := entry["request_id"].(string); id == "" {
				t.Error("expected request_id in log entry")
			}
			tl.AssertContains(t, "inside handler")
		})
	}
}

// TestLogger_DefaultStatus tests that a handler writing only a body logs 200.
func TestLogger_DefaultStatus(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	Logger(tl.Logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	tl.AssertContains(t, `"status":200`)
	tl.AssertContains(t, `"bytes":2`)
}

// TestRecovery tests panic recovery.
func TestRecovery(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recovery(tl.Logger)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != response.CodeInternal {
		t.Errorf("expected %s error, got %+v", response.CodeInternal, resp.Error)
	}
	tl.AssertContains(t, "Panic recovered")
	tl.AssertContains(t, "boom")
}

// TestRecovery_AbortHandler tests that http.ErrAbortHandler is re-raised.
func TestRecovery_AbortHandler(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		if r := recover(); r != http.ErrAbortHandler {
			t.Errorf("expected ErrAbortHandler to propagate, got %v", r)
		}
	}()

	Recovery(tl.Logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
