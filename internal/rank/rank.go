// Package rank computes a user's ordinal position within a country-filtered
// GitHub search. The scan is deliberately bounded: GitHub caps search results
// at 1000 and every page costs budget, so at most five pages of 100 are read.
// A rank of 0 always means "unknown", never "ranked zero" or "last".
package rank

import (
	"context"
	"strings"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// Searcher is the slice of the upstream client the calculator needs.
type Searcher interface {
	SearchUsersByLocation(ctx context.Context, location string, page, perPage int) (domain.SearchUsersResponse, error)
}

// Default scan bounds.
const (
	DefaultPageSize   = 100
	DefaultMaxPages   = 5
	searchResultLimit = 1000 // hard upstream cap on search results
)

// Calculator performs the bounded page scan. Zero-valued PageSize/MaxPages
// fall back to the defaults.
type Calculator struct {
	Searcher Searcher
	PageSize int
	MaxPages int
}

// NewCalculator returns a Calculator with the default bounds.
func NewCalculator(s Searcher) *Calculator {
	return &Calculator{Searcher: s, PageSize: DefaultPageSize, MaxPages: DefaultMaxPages}
}

// Rank locates username (case-insensitive) among users whose location
// matches countryName, ordered by followers descending.
//
// Best-effort: any fetch failure ends the scan with whatever was
// observed so far, and a user beyond the page ceiling reports Rank 0 with
// the observed Total.
func (c *Calculator) Rank(ctx context.Context, countryName, username string) domain.RankResult {
	perPage := c.PageSize
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	first, err := c.Searcher.SearchUsersByLocation(ctx, countryName, 1, perPage)
	if err != nil {
		return domain.RankResult{}
	}
	total := first.TotalCount

	if idx := findLogin(first.Items, username); idx >= 0 {
		return domain.RankResult{Rank: idx + 1, Total: total}
	}

	reachable := total
	if reachable > searchResultLimit {
		reachable = searchResultLimit
	}
	pages := (reachable + perPage - 1) / perPage
	if pages > maxPages {
		pages = maxPages
	}

	for page := 2; page <= pages; page++ {
		resp, err := c.Searcher.SearchUsersByLocation(ctx, countryName, page, perPage)
		if err != nil {
			break
		}
		if idx := findLogin(resp.Items, username); idx >= 0 {
			return domain.RankResult{Rank: (page-1)*perPage + idx + 1, Total: total}
		}
		if len(resp.Items) < perPage {
			break // end of results
		}
	}
	return domain.RankResult{Rank: 0, Total: total}
}

// findLogin returns the 0-based index of the login in items, or -1.
func findLogin(items []domain.User, login string) int {
	for i, u := range items {
		if strings.EqualFold(u.Login, login) {
			return i
		}
	}
	return -1
}
