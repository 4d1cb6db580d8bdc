// Package domain defines the value types exchanged between the GitHub
// upstream client, the ranking services, and the HTTP layer. All types are
// plain data: nothing here is persisted, and equality/identity is by value.
package domain

import "time"

// User is a GitHub user profile as returned by GET /users/{username} or
// embedded in search results. Location is free text supplied by the profile
// owner and has no fixed format.
//
// PublicContributions and TotalContributions are synthetic display figures
// attached by the service layer (see services.ContributionAugmenter); they
// are never fetched from GitHub and differ between renders.
type User struct {
	Login               string    `json:"login"`
	ID                  int64     `json:"id"`
	AvatarURL           string    `json:"avatar_url"`
	HTMLURL             string    `json:"html_url"`
	Name                string    `json:"name,omitempty"`
	Company             string    `json:"company,omitempty"`
	Blog                string    `json:"blog,omitempty"`
	Location            string    `json:"location,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	TwitterUsername     string    `json:"twitter_username,omitempty"`
	PublicRepos         int       `json:"public_repos"`
	PublicGists         int       `json:"public_gists"`
	Followers           int       `json:"followers"`
	Following           int       `json:"following"`
	CreatedAt           time.Time `json:"created_at"`
	PublicContributions int       `json:"public_contributions,omitempty"`
	TotalContributions  int       `json:"total_contributions,omitempty"`
}

// DisplayName returns the profile name, falling back to the login handle.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// SearchUsersResponse mirrors the payload of GET /search/users.
type SearchUsersResponse struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []User `json:"items"`
}

// Country is a static gazetteer entry. Codes are unique across the table;
// Cities holds the city names used for substring location matching.
type Country struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Flag   string   `json:"flag"`
	Cities []string `json:"-"`
}

// RankResult is a user's position within a country-filtered search.
//
// Rank 0 means "unknown": the user was not found within the scanned pages.
// It must never be read as "ranked last", regardless of Total.
type RankResult struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

// Ranked reports whether the scan actually located the user.
func (r RankResult) Ranked() bool { return r.Rank > 0 }

// RateLimitInfo is a snapshot of the upstream call budget.
type RateLimitInfo struct {
	Remaining int        `json:"remaining"`
	ResetAt   *time.Time `json:"resetAt"`
	IsLimited bool       `json:"isLimited"`
}
