package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

// TestOK tests the success envelope.
func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]int{"count": 6})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type %q", ct)
	}

	resp := decode(t, w)
	if resp.Error != nil {
		t.Errorf("expected no error, got %+v", resp.Error)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["count"] != float64(6) {
		t.Errorf("unexpected data %v", resp.Data)
	}
}

// TestFail tests the error envelope.
func TestFail(t *testing.T) {
	resp := Fail("TEST_ERROR", "Test error message", "Additional details")

	if resp.Data != nil {
		t.Error("expected Data to be nil")
	}
	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Code != "TEST_ERROR" || resp.Error.Details != "Additional details" {
		t.Errorf("unexpected error %+v", resp.Error)
	}
}

// TestErrorHelpers tests status and code of each helper.
func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(http.ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "bad", "") }, http.StatusBadRequest, CodeBadRequest},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "missing", "") }, http.StatusNotFound, CodeNotFound},
		{"method", func(w http.ResponseWriter) { MethodNotAllowed(w, http.MethodPost) }, http.StatusMethodNotAllowed, CodeMethodNotAllowed},
		{"rate limited", func(w http.ResponseWriter) { RateLimited(w, "slow down") }, http.StatusTooManyRequests, CodeRateLimited},
		{"internal", func(w http.ResponseWriter) { InternalError(w, fmt.Errorf("boom")) }, http.StatusInternalServerError, CodeInternal},
		{"unavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, "loading") }, http.StatusServiceUnavailable, CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := decode(t, w)
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("expected code %s, got %+v", tt.wantCode, resp.Error)
			}
		})
	}
}

// TestInternalErrorHidesCause tests that the cause never reaches the client.
func TestInternalErrorHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, fmt.Errorf("secret path /etc/content"))

	resp := decode(t, w)
	if resp.Error.Details != "An unexpected error occurred" {
		t.Errorf("unexpected details %q", resp.Error.Details)
	}
}

// TestErrorFromType tests typed error mapping.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errors.NewNotFoundError("command", "x"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", errors.NewNotFoundError("command", "x")), http.StatusNotFound},
		{"validation", errors.NewValidationError("category", "x", "unknown"), http.StatusBadRequest},
		{"resource wrapping validation", errors.WrapResource("load", "catalog", "items", errors.NewValidationError("id", "", "bad")), http.StatusBadRequest},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
