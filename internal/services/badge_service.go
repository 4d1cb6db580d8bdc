package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tbourn/go-rankings-backend/internal/badge"
	"github.com/tbourn/go-rankings-backend/internal/domain"
	"github.com/tbourn/go-rankings-backend/internal/geo"
	"github.com/tbourn/go-rankings-backend/internal/github"
)

// identiconBase generates a deterministic fallback avatar for placeholder
// users when the real profile cannot be fetched.
const identiconBase = "https://api.dicebear.com/7.x/identicon/svg?seed="

// maxAvatarBytes caps how much image data is inlined into a badge.
const maxAvatarBytes = 4 << 20

// UserFetcher is the slice of the GitHub client the badge pipeline needs.
type UserFetcher interface {
	FetchUser(ctx context.Context, username string) (domain.User, error)
}

// Ranker produces a bounded country-rank scan result.
type Ranker interface {
	Rank(ctx context.Context, countryName, username string) domain.RankResult
}

// BadgeResult is one rendered badge response.
//
// ErrorCard marks the hard-failure path (unknown user, upstream error): the
// SVG is an error card, it was not cached, and the handler should apply the
// short cache lifetime. A rate-limited fetch is NOT an error card; it
// renders a normal-looking badge for a placeholder user.
type BadgeResult struct {
	SVG       string
	CacheHit  bool
	ErrorCard bool
}

// BadgeService orchestrates one badge request: cache check, user fetch with
// placeholder fallback, country resolution, ranking, contribution
// augmentation, avatar inlining, render, cache fill.
type BadgeService struct {
	Fetcher   UserFetcher
	Ranker    Ranker
	Augmenter *ContributionAugmenter

	// Resolve maps a location string to a country; defaults to geo.Resolve.
	Resolve func(location string) (domain.Country, bool)

	// HTTP fetches avatar bytes for inlining. Failures never abort a badge.
	HTTP *http.Client

	cache *github.Cache[string]
	now   func() time.Time
}

// NewBadgeService builds a BadgeService with a badge cache of the given TTL.
func NewBadgeService(fetcher UserFetcher, ranker Ranker, cacheTTL time.Duration) *BadgeService {
	return &BadgeService{
		Fetcher:   fetcher,
		Ranker:    ranker,
		Augmenter: NewContributionAugmenter(),
		Resolve:   geo.Resolve,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		cache:     github.NewCache[string](cacheTTL),
		now:       time.Now,
	}
}

// Badge renders (or serves from cache) the badge for username in theme.
// It never fails: every outcome is an SVG document.
func (s *BadgeService) Badge(ctx context.Context, username string, theme badge.Theme) BadgeResult {
	key := strings.ToLower(username) + ":" + string(theme)
	if svg, ok := s.cache.Get(key); ok {
		badgeCacheLookups.WithLabelValues("hit").Inc()
		return BadgeResult{SVG: svg, CacheHit: true}
	}
	badgeCacheLookups.WithLabelValues("miss").Inc()

	user, err := s.Fetcher.FetchUser(ctx, username)
	switch {
	case err == nil:
	case errors.Is(err, github.ErrRateLimited):
		// Budget exhausted: render a real-looking badge for a placeholder
		// so embedding contexts always get something.
		user = s.placeholderUser(username)
	default:
		msg := fmt.Sprintf("User %q not found or API rate limited. Try again later.", username)
		// Hard failures are short-lived; the badge cache is not populated.
		return BadgeResult{SVG: badge.RenderError(msg, theme), ErrorCard: true}
	}

	var country *domain.Country
	var rankResult domain.RankResult
	if user.Location != "" {
		if c, ok := s.Resolve(user.Location); ok {
			country = &c
			rankResult = s.Ranker.Rank(ctx, c.Name, username)
		}
	}

	user = s.Augmenter.Augment(user)
	avatarDataURL := s.inlineAvatar(ctx, user.AvatarURL)

	svg := badge.Render(user, country, rankResult.Rank, rankResult.Total, theme, avatarDataURL)
	s.cache.Set(key, svg)
	return BadgeResult{SVG: svg}
}

// placeholderUser substitutes a zero-stat profile with a deterministic
// identicon avatar and no location, so ranking is skipped.
func (s *BadgeService) placeholderUser(username string) domain.User {
	return domain.User{
		Login:     username,
		Name:      username,
		AvatarURL: identiconBase + url.QueryEscape(username),
		HTMLURL:   "https://github.com/" + username,
		CreatedAt: s.now().UTC(),
	}
}

// inlineAvatar fetches the avatar and re-encodes it as a data URI so the
// badge is self-contained. Best effort: any failure returns "" and the
// renderer falls back to the remote reference.
func (s *BadgeService) inlineAvatar(ctx context.Context, avatarURL string) string {
	if avatarURL == "" {
		return ""
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return ""
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ""
	}

	// One byte past the cap distinguishes "exactly at the limit" from
	// "too big"; an oversized image falls back to the remote reference
	// instead of inlining a truncated payload.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes+1))
	if err != nil || len(data) == 0 || len(data) > maxAvatarBytes {
		return ""
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
