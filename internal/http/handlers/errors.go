// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// These symbolic constants are mapped to HTTP responses via the `fail()`
// helper and give clients a stable, machine-readable taxonomy alongside the
// human-readable message.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless noted.
//   - Generic codes (bad_request, not_found, too_many_requests) mirror common
//     HTTP status semantics.
//   - Domain-specific codes (upstream_failed, list_failed) mark GitHub proxy
//     failures that a status alone cannot convey.
//
// Note the badge endpoint never uses these: it degrades to an error-styled
// SVG with HTTP 200 so embedding contexts always render something.
package handlers

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"

	// Domain-specific:
	ErrCodeUpstreamFailed   = "upstream_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
