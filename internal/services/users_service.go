package services

import (
	"context"
	"strings"

	"github.com/tbourn/go-rankings-backend/internal/domain"
	"github.com/tbourn/go-rankings-backend/internal/geo"
)

// GitHubClient is the slice of the upstream client the listing and
// rank-check flows need.
type GitHubClient interface {
	FetchUser(ctx context.Context, username string) (domain.User, error)
	SearchUsersByLocation(ctx context.Context, location string, page, perPage int) (domain.SearchUsersResponse, error)
	FetchManyUsers(ctx context.Context, usernames []string) []domain.User
	RateLimit() domain.RateLimitInfo
}

// DefaultListPageSize matches the listing UI page size.
const DefaultListPageSize = 30

// UsersPage is the listing endpoint payload.
type UsersPage struct {
	Users      []domain.User        `json:"users"`
	TotalCount int                  `json:"total_count"`
	Page       int                  `json:"page"`
	RateLimit  domain.RateLimitInfo `json:"rateLimitInfo"`
	IsLiveData bool                 `json:"isLiveData"`
}

// RankCheck is the user-search payload. CountryRank 0 means unknown.
// Estimated marks a rank extrapolated from follower counts rather than
// located in the search results; consumers must present it as a guess.
type RankCheck struct {
	User           domain.User     `json:"user"`
	Country        *domain.Country `json:"country,omitempty"`
	CountryRank    int             `json:"country_rank"`
	TotalInCountry int             `json:"total_in_country"`
	Estimated      bool            `json:"estimated"`
}

// UsersService serves the country leaderboard listing and the single-user
// rank check.
type UsersService struct {
	Client    GitHubClient
	Augmenter *ContributionAugmenter

	// Resolve defaults to geo.Resolve.
	Resolve  func(location string) (domain.Country, bool)
	PageSize int
}

// NewUsersService constructs a UsersService with defaults.
func NewUsersService(client GitHubClient) *UsersService {
	return &UsersService{
		Client:    client,
		Augmenter: NewContributionAugmenter(),
		Resolve:   geo.Resolve,
		PageSize:  DefaultListPageSize,
	}
}

func (s *UsersService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultListPageSize
}

// NormalizeCountry turns the country query parameter into a search filter:
// empty, "all", and "world" all mean a global search (no location filter).
func NormalizeCountry(country string) string {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "", "all", "world":
		return ""
	}
	return strings.TrimSpace(country)
}

// List returns one page of the leaderboard for country (global when blank).
// Each search hit is re-fetched for full profile details; users dropped by
// the partial multi-fetch are simply absent from the page. Errors propagate
// so the handler can surface rate limiting as an explicit 429.
func (s *UsersService) List(ctx context.Context, country string, page int) (UsersPage, error) {
	if page < 1 {
		page = 1
	}

	search, err := s.Client.SearchUsersByLocation(ctx, NormalizeCountry(country), page, s.pageSize())
	if err != nil {
		// The snapshot still matters on failure: a rate-limited response
		// must tell clients when the window resets.
		return UsersPage{RateLimit: s.Client.RateLimit()}, err
	}

	usernames := make([]string, len(search.Items))
	for i, u := range search.Items {
		usernames[i] = u.Login
	}
	detailed := s.Client.FetchManyUsers(ctx, usernames)

	return UsersPage{
		Users:      s.Augmenter.AugmentAll(detailed),
		TotalCount: search.TotalCount,
		Page:       page,
		RateLimit:  s.Client.RateLimit(),
		IsLiveData: true,
	}, nil
}

// CheckRank fetches a user and locates them in page 1 of their country's
// leaderboard. When the user is below the page (fewer followers than its
// last entry), the rank is linearly extrapolated from the follower gap and
// flagged Estimated. Unknown locations and unresolvable countries return a
// result with no country and rank 0.
func (s *UsersService) CheckRank(ctx context.Context, username string) (RankCheck, error) {
	user, err := s.Client.FetchUser(ctx, username)
	if err != nil {
		return RankCheck{}, err
	}
	out := RankCheck{User: s.Augmenter.Augment(user)}

	if user.Location == "" {
		return out, nil
	}
	resolve := s.Resolve
	if resolve == nil {
		resolve = geo.Resolve
	}
	country, ok := resolve(user.Location)
	if !ok {
		return out, nil
	}
	out.Country = &country

	search, err := s.Client.SearchUsersByLocation(ctx, country.Name, 1, s.pageSize())
	if err != nil {
		// The user itself resolved fine; rank stays unknown.
		return out, nil
	}
	out.TotalInCountry = search.TotalCount

	// Search results are already ordered by followers descending.
	for i, item := range search.Items {
		if strings.EqualFold(item.Login, username) {
			out.CountryRank = i + 1
			return out, nil
		}
	}
	if n := len(search.Items); n > 0 {
		lowest := search.Items[n-1].Followers
		if user.Followers < lowest {
			out.CountryRank = n + (lowest-user.Followers)/10 + 1
			out.Estimated = true
		}
	}
	return out, nil
}
