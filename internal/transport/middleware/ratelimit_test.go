package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(0)
	t.Cleanup(rl.Stop)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/team-members", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestRateLimiter_BlocksAfterBudget(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	h := rl.Limit("invites", 2)(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1111").Code)
	// Port changes do not reset the budget.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:2222").Code)

	rec := hit(h, "10.0.0.1:3333")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "31", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1111").Code)
}

func TestRateLimiter_Refills(t *testing.T) {
	t.Parallel()

	rl, now := newTestLimiter(t)
	h := rl.Limit("invites", 60)(okHandler())

	for range 60 {
		hit(h, "10.0.0.1:1")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)

	*now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
}

func TestRateLimiter_ScopesAreIndependent(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	invites := rl.Limit("invites", 1)(okHandler())
	links := rl.Limit("invite-links", 1)(okHandler())

	assert.Equal(t, http.StatusOK, hit(invites, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, hit(links, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(invites, "10.0.0.1:1").Code)
}

func TestRateLimiter_DisabledLimit(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	h := rl.Limit("invites", 0)(okHandler())
	for range 5 {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	}
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	rl, now := newTestLimiter(t)
	h := rl.Limit("invites", 5)(okHandler())
	hit(h, "10.0.0.1:1")

	*now = now.Add(bucketIdleTTL + time.Minute)
	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.buckets)
}
