package github

import (
	"strconv"
	"sync"
	"time"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// defaultRemaining is the optimistic budget assumed before the first
// upstream response has been seen (the unauthenticated GitHub ceiling).
const defaultRemaining = 60

// RateLimitTracker records the remaining upstream call budget and its reset
// time as reported by x-ratelimit-remaining / x-ratelimit-reset response
// headers. It is advisory: it tells callers when a network call would be
// wasted, it never blocks or throttles.
//
// Updates follow last-writer-wins; every real response supersedes the
// previous known budget, so no stricter ordering is needed.
type RateLimitTracker struct {
	now func() time.Time

	mu        sync.Mutex
	remaining int
	resetAt   time.Time
}

// NewRateLimitTracker returns a tracker initialized to the optimistic
// unauthenticated default so the first call is always attempted.
func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{now: time.Now, remaining: defaultRemaining}
}

// Record updates the tracker from raw header values. Blank or malformed
// values leave the corresponding field untouched. reset is the Unix epoch
// in seconds, as sent by GitHub.
func (t *RateLimitTracker) Record(remaining, reset string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			t.remaining = n
		}
	}
	if reset != "" {
		if sec, err := strconv.ParseInt(reset, 10, 64); err == nil {
			t.resetAt = time.Unix(sec, 0)
		}
	}
}

// IsLimited reports whether the budget is exhausted and the reset time has
// not yet passed. A budget of 1 is treated as exhausted: the last call is
// reserved so a request never fails mid-pipeline.
func (t *RateLimitTracker) IsLimited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining <= 1 && t.now().Before(t.resetAt)
}

// Info returns a snapshot of the current budget.
func (t *RateLimitTracker) Info() domain.RateLimitInfo {
	t.mu.Lock()
	remaining, resetAt := t.remaining, t.resetAt
	limited := remaining <= 1 && t.now().Before(resetAt)
	t.mu.Unlock()

	info := domain.RateLimitInfo{Remaining: remaining, IsLimited: limited}
	if !resetAt.IsZero() {
		reset := resetAt.UTC()
		info.ResetAt = &reset
	}
	return info
}
