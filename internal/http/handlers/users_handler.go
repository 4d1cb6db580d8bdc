// Ranking HTTP handlers.
//
// This file exposes the JSON endpoints backing the leaderboard UI:
//   - GET /github/users                 (paginated country leaderboard)
//   - GET /github/users/{username}/rank (single-user rank check)
//
// Handlers are transport-thin: they parse query input, call application
// services, and translate upstream failures into HTTP responses. GitHub rate
// limiting is surfaced as an explicit 429 carrying reset metadata so clients
// can back off instead of hammering the proxy.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-rankings-backend/internal/domain"
	"github.com/tbourn/go-rankings-backend/internal/github"
	"github.com/tbourn/go-rankings-backend/internal/utils"
)

// RateLimitedResponse is the 429 payload. It extends the standard error
// envelope with the upstream quota snapshot so clients know when to retry.
type RateLimitedResponse struct {
	ErrorResponse
	RateLimit  domain.RateLimitInfo `json:"rateLimitInfo"`
	IsLiveData bool                 `json:"isLiveData"`
}

// rateLimited writes the 429 envelope for the listing endpoint.
func rateLimited(c *gin.Context, info domain.RateLimitInfo) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, RateLimitedResponse{
		ErrorResponse: ErrorResponse{
			RequestID: reqID,
			Code:      ErrCodeRateLimited,
			Message:   "GitHub API rate limit exceeded",
		},
		RateLimit:  info,
		IsLiveData: false,
	})
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List ranked users for a country
// @Description Returns one page of GitHub users filtered by country, ordered by follower count descending. Country "all" or "world" (or omitted) lists globally.
// @Tags        Rankings
// @Produce     json
//
// @Param       country  query  string  false  "Country name filter"  example(Greece)
// @Param       page     query  int     false  "Page number"          minimum(1) default(1)
//
// @Success     200  {object}  services.UsersPage
// @Failure     429  {object}  handlers.RateLimitedResponse  "GitHub quota exhausted"
// @Failure     500  {object}  handlers.ErrorResponse        "Upstream listing failed"
// @Router      /github/users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	country := c.Query("country")
	page := utils.Page(c.Query("page"))

	res, err := h.usersSvc.List(c.Request.Context(), country, page)
	if err != nil {
		if errors.Is(err, github.ErrRateLimited) {
			rateLimited(c, res.RateLimit)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, res)
}

// CheckRank godoc
// @ID          checkRank
// @Summary     Check a single user's country rank
// @Description Fetches a GitHub user, resolves their profile location to a country, and reports their rank within it. Rank 0 means the rank could not be determined.
// @Tags        Rankings
// @Produce     json
//
// @Param       username  path  string  true  "GitHub login"  example(octocat)
//
// @Success     200  {object}  services.RankCheck
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     429  {object}  handlers.ErrorResponse  "GitHub quota exhausted"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream error"
// @Router      /github/users/{username}/rank [get]
func (h *Handlers) CheckRank(c *gin.Context) {
	username := c.Param("username")

	res, err := h.usersSvc.CheckRank(c.Request.Context(), username)
	if err != nil {
		switch {
		case github.IsNotFound(err):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case errors.Is(err, github.ErrRateLimited):
			fail(c, http.StatusTooManyRequests, ErrCodeRateLimited, "GitHub API rate limit exceeded")
		default:
			fail(c, http.StatusBadGateway, ErrCodeUpstreamFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, res)
}
