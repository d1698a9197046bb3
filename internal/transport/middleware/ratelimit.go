package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// bucketIdleTTL is how long an untouched bucket survives cleanup.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter keeps a token bucket per scope and client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go rl.cleanupLoop(cleanupInterval)
	}
	return rl
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client IP within scope. Routes
// sharing a scope share a budget. A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(scope string, maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(scope+"|"+clientIP(r), maxPerMinute) {
				w.Header().Set("Retry-After", strconv.Itoa(60/maxPerMinute+1))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, maxPerMinute int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{
			tokens:     float64(maxPerMinute),
			capacity:   float64(maxPerMinute),
			perSecond:  float64(maxPerMinute) / 60,
			lastRefill: now,
		}
		rl.buckets[key] = b
	}

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > bucketIdleTTL {
			delete(rl.buckets, key)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
