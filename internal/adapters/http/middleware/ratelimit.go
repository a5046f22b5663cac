package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
)

// idleClientTTL is how long a client's bucket is kept after its last request.
const idleClientTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

// NewRateLimiter creates a RateLimiter from cfg. A non-positive
// RequestsPerSecond disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

// Middleware answers 429 once a client has exhausted its bucket.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl.limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				dto.WriteProblem(w, r, http.StatusTooManyRequests, dto.CodeTooManyRequests,
					"too many requests, retry later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops idle buckets at most once per idleClientTTL. Must be called
// with rl.mu held.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < idleClientTTL {
		return
	}
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleClientTTL {
			delete(rl.clients, ip)
		}
	}
	rl.lastSweep = now
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
