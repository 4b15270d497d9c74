package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	h := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", codes)
	}
}

func TestRateLimitIsPerInstance(t *testing.T) {
	limited := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	other := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	rr := httptest.NewRecorder()
	limited.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	limited.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request on same instance to be limited, got %d", rr.Code)
	}

	// A separately scoped limiter keeps its own budget for the same IP.
	rr = httptest.NewRecorder()
	other.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected request on second instance to pass, got %d", rr.Code)
	}
}

func TestRateLimitSweepDropsIdleVisitors(t *testing.T) {
	table := newVisitorTable(1, 1)
	start := time.Now()

	table.allow("10.0.0.1", start)
	table.allow("10.0.0.2", start)

	// One visitor stays active past the idle cutoff, the other goes quiet.
	active := start.Add(visitorIdle)
	table.allow("10.0.0.1", active)

	table.allow("10.0.0.3", active.Add(sweepInterval+time.Second))

	table.mu.Lock()
	defer table.mu.Unlock()
	if _, ok := table.visitors["10.0.0.2"]; ok {
		t.Fatal("expected idle visitor to be swept")
	}
	if _, ok := table.visitors["10.0.0.1"]; !ok {
		t.Fatal("expected active visitor to survive the sweep")
	}
}
