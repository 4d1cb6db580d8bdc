// Package utils holds small helpers shared by the HTTP layer, independent
// of the ranking domain.
package utils

import "strconv"

// AtoiDefault converts s to an int, returning def when s is empty or not a
// plain base-10 integer. No whitespace trimming.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Page parses the page query parameter of the listing endpoints. Missing,
// malformed, zero, and negative values all mean the first page; GitHub's
// search API rejects page numbers below 1.
func Page(s string) int {
	if n := AtoiDefault(s, 1); n >= 1 {
		return n
	}
	return 1
}
