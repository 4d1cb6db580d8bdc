// Package github – error taxonomy for upstream calls.
//
// Callers branch on two conditions: the budget being exhausted (locally
// gated or upstream 403), and any other non-2xx response. Not-found is
// deliberately not a distinct sentinel; it surfaces as UpstreamError with
// Status 404 and handlers translate it where it matters.
package github

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when a call is refused locally because the
// tracked budget is exhausted, or when the upstream answers HTTP 403.
// It is recoverable: callers fall back to placeholder data rather than fail.
var ErrRateLimited = errors.New("github api rate limited")

// UpstreamError wraps any other non-2xx upstream response. It is surfaced
// to the caller as-is and never retried.
type UpstreamError struct {
	Status int
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github api error: %d", e.Status)
}

// IsNotFound reports whether err is an UpstreamError carrying HTTP 404.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Status == 404
}
