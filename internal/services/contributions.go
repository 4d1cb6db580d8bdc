// Package services holds the application logic between the HTTP layer and
// the GitHub client: badge orchestration, the country listing, and the
// rank-check flow. Services depend on narrow interfaces so tests can swap
// in fakes.
package services

import (
	"math/rand"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// ContributionAugmenter attaches synthetic contribution figures to a user
// for display parity with the listing UI. The figures are derived from real
// stats (floor(repos*50 + followers*2)) plus a random offset, so they are
// deliberately not reproducible between calls.
//
// Intn is the random source; tests pin it for determinism.
type ContributionAugmenter struct {
	Intn func(n int) int
}

// NewContributionAugmenter returns an augmenter backed by math/rand.
func NewContributionAugmenter() *ContributionAugmenter {
	return &ContributionAugmenter{Intn: rand.Intn}
}

// Augment returns a copy of u with the synthetic contribution fields set.
// The input is never mutated.
func (a *ContributionAugmenter) Augment(u domain.User) domain.User {
	base := u.PublicRepos*50 + u.Followers*2
	u.PublicContributions = base + a.Intn(500)
	u.TotalContributions = base + a.Intn(2000) + 500
	return u
}

// AugmentAll maps Augment over users, returning a new slice.
func (a *ContributionAugmenter) AugmentAll(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = a.Augment(u)
	}
	return out
}
