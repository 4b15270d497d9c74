package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepInterval = 5 * time.Minute
	visitorIdle   = 10 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// visitorTable tracks one token bucket per client IP. Stale entries are
// pruned inline on access rather than by a background goroutine, so a
// limiter holds no resources beyond its map.
type visitorTable struct {
	mu        sync.Mutex
	visitors  map[string]*limiterEntry
	lastSweep time.Time

	rps   float64
	burst int
}

func newVisitorTable(rps float64, burst int) *visitorTable {
	return &visitorTable{
		visitors:  map[string]*limiterEntry{},
		lastSweep: time.Now(),
		rps:       rps,
		burst:     burst,
	}
}

// allow reports whether a request from ip fits its bucket at time now.
func (t *visitorTable) allow(ip string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) > sweepInterval {
		t.sweepLocked(now)
	}

	le, ok := t.visitors[ip]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(t.rps), t.burst)}
		t.visitors[ip] = le
	}
	le.last = now
	return le.limiter.Allow()
}

func (t *visitorTable) sweepLocked(now time.Time) {
	for k, v := range t.visitors {
		if now.Sub(v.last) > visitorIdle {
			delete(t.visitors, k)
		}
	}
	t.lastSweep = now
}

func getIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies a per-IP token bucket limiter. Each call owns its own
// visitor table, so separately scoped routes (auth, contact form) do not
// share budgets.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	table := newVisitorTable(rps, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !table.allow(getIP(r), time.Now()) {
				http.Error(w, "Too many attempts from this IP, please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
