// Badge HTTP handler.
//
// Exposes GET /badge/{username}, the embeddable SVG rank card. The endpoint
// intentionally always answers 200 with an SVG body: markdown image tags
// and README embeds must render something even when the user is unknown or
// the upstream is rate-limited. Failures only vary the Cache-Control
// lifetime and the card that is drawn.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-rankings-backend/internal/badge"
	"github.com/tbourn/go-rankings-backend/internal/services"
)

const (
	contentTypeSVG = "image/svg+xml"

	// Fresh badges live 6h with a 12h stale-while-revalidate window; error
	// cards are short-lived since the condition may be transient.
	badgeCacheControl = "public, max-age=21600, s-maxage=21600, stale-while-revalidate=43200"
	errorCacheControl = "public, max-age=300"
)

//
// Service contracts (context-aware)
//

// BadgeService renders (or serves from cache) one badge per request.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type BadgeService interface {
	// Badge renders the rank card for username in the given theme.
	Badge(ctx context.Context, username string, theme badge.Theme) services.BadgeResult
}

// UsersService defines the ranked-listing and rank-check operations consumed
// by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UsersService interface {
	// List returns one page of users for a country, most-followed first.
	List(ctx context.Context, country string, page int) (services.UsersPage, error)
	// CheckRank resolves a single user's rank within their own country.
	CheckRank(ctx context.Context, username string) (services.RankCheck, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for badges and user rankings. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	badgeSvc BadgeService
	usersSvc UsersService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(badgeSvc BadgeService, usersSvc UsersService) *Handlers {
	return &Handlers{badgeSvc: badgeSvc, usersSvc: usersSvc}
}

// Badge godoc
// @ID          getBadge
// @Summary     Embeddable SVG rank badge
// @Description Renders the country-rank badge for a GitHub user. Always returns 200 with an SVG body; unknown users get an error-styled card with a short cache lifetime.
// @Tags        Badge
// @Produce     image/svg+xml
//
// @Param       username  path   string  true   "GitHub login"  example(octocat)
// @Param       theme     query  string  false  "Visual theme"  Enums(dark, light, gradient, midnight, ocean, sunset)  default(dark)
//
// @Success     200  {string}  string  "SVG document"
// @Header      200  {string}  X-Cache        "HIT or MISS"
// @Header      200  {string}  Cache-Control  "Freshness window"
// @Router      /badge/{username} [get]
func (h *Handlers) Badge(c *gin.Context) {
	username := c.Param("username")
	theme := badge.ParseTheme(c.Query("theme"))

	res := h.badgeSvc.Badge(c.Request.Context(), username, theme)

	if res.ErrorCard {
		c.Header("Cache-Control", errorCacheControl)
		c.Data(http.StatusOK, contentTypeSVG, []byte(res.SVG))
		return
	}

	c.Header("Cache-Control", badgeCacheControl)
	if res.CacheHit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, contentTypeSVG, []byte(res.SVG))
}
