package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestLimiter(t *testing.T, limit int) (*RateLimiter, *time.Time) {
	t.Helper()
	logger := zerolog.Nop()
	rl := NewRateLimiter(limit, &logger)
	t.Cleanup(rl.Stop)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

// TestNewRateLimiter tests rate limiter creation.
func TestNewRateLimiter(t *testing.T) {
	rl, _ := newTestLimiter(t, 100)

	if rl.visitors == nil {
		t.Error("visitors map not initialized")
	}
	if rl.limit != 100 {
		t.Errorf("expected limit=100, got %d", rl.limit)
	}
	if rl.window != time.Minute {
		t.Errorf("expected window=1m, got %v", rl.window)
	}
}

// TestRateLimiter_Allow tests the burst budget.
func TestRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		requests      int
		expectedAllow int
	}{
		{name: "within limit", limit: 10, requests: 5, expectedAllow: 5},
		{name: "at limit", limit: 10, requests: 10, expectedAllow: 10},
		{name: "over limit", limit: 10, requests: 15, expectedAllow: 10},
		{name: "single request budget", limit: 1, requests: 3, expectedAllow: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, _ := newTestLimiter(t, tt.limit)

			allowed := 0
			for range tt.requests {
				if rl.allow("192.0.2.1") {
					allowed++
				}
			}
			if allowed != tt.expectedAllow {
				t.Errorf("expected %d allowed, got %d", tt.expectedAllow, allowed)
			}
		})
	}
}

// TestRateLimiter_WindowReset tests that the budget refills after the window.
func TestRateLimiter_WindowReset(t *testing.T) {
	rl, now := newTestLimiter(t, 2)

	rl.allow("a")
	rl.allow("a")
	if rl.allow("a") {
		t.Fatal("expected third request to be rejected")
	}

	*now = now.Add(time.Minute)
	if !rl.allow("a") {
		t.Error("expected budget to refill after the window")
	}
}

// TestRateLimiter_GradualRefill tests that tokens come back one interval at a time.
func TestRateLimiter_GradualRefill(t *testing.T) {
	rl, now := newTestLimiter(t, 2)

	rl.allow("a")
	rl.allow("a")

	*now = now.Add(30 * time.Second)
	if !rl.allow("a") {
		t.Fatal("expected one token after half the window")
	}
	if rl.allow("a") {
		t.Error("expected only one token after half the window")
	}
}

// TestRateLimiter_ClientsAreIndependent tests per-client buckets.
func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)

	if !rl.allow("a") || !rl.allow("b") {
		t.Fatal("expected each client to get its own budget")
	}
	if rl.allow("a") {
		t.Error("expected the second request from a to be rejected")
	}
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	tests := []struct {
		limit    int
		expected string
	}{
		{limit: 1, expected: "60"},
		{limit: 7, expected: "9"},
		{limit: 60, expected: "1"},
		{limit: 600, expected: "1"},
	}

	for _, tt := range tests {
		rl, _ := newTestLimiter(t, tt.limit)
		if got := rl.retryAfter(); got != tt.expected {
			t.Errorf("limit %d: expected Retry-After %q, got %q", tt.limit, tt.expected, got)
		}
	}
}

// TestRateLimiter_Evict tests removal of idle clients.
func TestRateLimiter_Evict(t *testing.T) {
	rl, now := newTestLimiter(t, 5)

	rl.allow("idle")
	*now = now.Add(20 * time.Minute)
	rl.allow("active")

	rl.evict(10 * time.Minute)

	if _, ok := rl.visitors["idle"]; ok {
		t.Error("expected idle client to be evicted")
	}
	if _, ok := rl.visitors["active"]; !ok {
		t.Error("expected active client to be kept")
	}
}

// TestRateLimiter_Concurrent tests that concurrent callers never exceed the budget.
func TestRateLimiter_Concurrent(t *testing.T) {
	rl, _ := newTestLimiter(t, 50)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("expected 50 allowed, got %d", allowed)
	}
}

// TestRateLimit tests the HTTP middleware.
func TestRateLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote, forwarded string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil)
		req.RemoteAddr = remote
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := send("192.0.2.1:1234", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec := send("192.0.2.1:5678", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("expected Retry-After 60, got %q", got)
	}

	// A forwarded client behind the same proxy has its own budget.
	if rec := send("192.0.2.1:9999", "198.51.100.7, 192.0.2.1"); rec.Code != http.StatusOK {
		t.Errorf("expected forwarded client to pass, got %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		expected  string
	}{
		{name: "remote host", remote: "203.0.113.5:4321", expected: "203.0.113.5"},
		{name: "first forwarded hop", remote: "10.0.0.1:80", forwarded: " 198.51.100.7 , 10.0.0.1", expected: "198.51.100.7"},
		{name: "unparseable remote", remote: "pipe", expected: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientIP(req); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
