package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// acceptHeader pins the v3 media type on every request.
const acceptHeader = "application/vnd.github.v3+json"

// Client performs the three upstream operations against the GitHub REST API.
// Every operation consults the response cache first, then the rate-limit
// tracker, then performs the network call, records the rate-limit headers,
// and populates the cache on success.
//
// The two typed caches share the upstream TTL but are keyed disjointly
// ("user:…" vs "search:…"). The zero value is not usable; construct with
// NewClient.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *RateLimitTracker

	users    *Cache[domain.User]
	searches *Cache[domain.SearchUsersResponse]
}

// NewClient builds a Client. token may be empty: requests are then sent
// unauthenticated, which only lowers the upstream rate ceiling. cacheTTL
// bounds the freshness of memoized upstream responses.
func NewClient(baseURL, token string, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
		limiter:  NewRateLimitTracker(),
		users:    NewCache[domain.User](cacheTTL),
		searches: NewCache[domain.SearchUsersResponse](cacheTTL),
	}
}

// SetHTTPClient overrides the underlying HTTP client (tests point it at an
// httptest server transport).
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// Limiter exposes the tracker so the HTTP layer can report budget snapshots.
func (c *Client) Limiter() *RateLimitTracker { return c.limiter }

// RateLimit returns a snapshot of the tracked upstream budget.
func (c *Client) RateLimit() domain.RateLimitInfo { return c.limiter.Info() }

// FetchUser returns the profile for username.
//
// Failure modes: ErrRateLimited when the call is locally gated or the
// upstream answers 403; *UpstreamError for any other non-2xx (404 included).
func (c *Client) FetchUser(ctx context.Context, username string) (domain.User, error) {
	key := "user:" + username
	if u, ok := c.users.Get(key); ok {
		cacheHits.WithLabelValues("fetch_user").Inc()
		return u, nil
	}
	if c.limiter.IsLimited() {
		return domain.User{}, ErrRateLimited
	}

	var u domain.User
	endpoint := c.baseURL + "/users/" + url.PathEscape(username)
	if err := c.getJSON(ctx, "fetch_user", endpoint, &u); err != nil {
		return domain.User{}, err
	}
	c.users.Set(key, u)
	return u, nil
}

// SearchUsersByLocation searches users whose declared location matches
// location, ordered by follower count descending. An empty location drops
// the location filter entirely, turning the search global.
func (c *Client) SearchUsersByLocation(ctx context.Context, location string, page, perPage int) (domain.SearchUsersResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 30
	}

	key := fmt.Sprintf("search:%s:%d:%d", location, page, perPage)
	if r, ok := c.searches.Get(key); ok {
		cacheHits.WithLabelValues("search_users").Inc()
		return r, nil
	}
	if c.limiter.IsLimited() {
		return domain.SearchUsersResponse{}, ErrRateLimited
	}

	query := "type:user"
	if location != "" {
		query = "location:" + location + " type:user"
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "followers")
	params.Set("order", "desc")
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	var resp domain.SearchUsersResponse
	endpoint := c.baseURL + "/search/users?" + params.Encode()
	if err := c.getJSON(ctx, "search_users", endpoint, &resp); err != nil {
		return domain.SearchUsersResponse{}, err
	}
	c.searches.Set(key, resp)
	return resp, nil
}

// FetchManyUsers fetches each username in order. On the first rate-limit
// failure it stops early and returns the users fetched so far; any other
// per-user error is skipped silently (counted and logged at debug level),
// so the result is always the successfully fetched subsequence.
func (c *Client) FetchManyUsers(ctx context.Context, usernames []string) []domain.User {
	out := make([]domain.User, 0, len(usernames))
	for _, name := range usernames {
		u, err := c.FetchUser(ctx, name)
		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				break
			}
			usersSkipped.Inc()
			log.Debug().Str("login", name).Err(err).Msg("skipping user in multi-fetch")
			continue
		}
		out = append(out, u)
	}
	return out
}

// getJSON performs one authenticated GET, updates the rate-limit tracker
// from the response headers, and decodes a 2xx body into dst.
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		// The `token` scheme keeps compatibility with the v3 API.
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.limiter.Record(
		resp.Header.Get("x-ratelimit-remaining"),
		resp.Header.Get("x-ratelimit-reset"),
	)
	upstreamReqs.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusForbidden {
		return ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Status: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
