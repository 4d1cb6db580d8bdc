package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-rankings-backend/internal/badge"
	"github.com/tbourn/go-rankings-backend/internal/services"
)

// ---------- stubs ----------

type stubBadgeSvc struct {
	badge func(context.Context, string, badge.Theme) services.BadgeResult
}

func (s stubBadgeSvc) Badge(ctx context.Context, username string, theme badge.Theme) services.BadgeResult {
	if s.badge != nil {
		return s.badge(ctx, username, theme)
	}
	return services.BadgeResult{SVG: "<svg/>"}
}

type stubUsersSvc struct {
	list      func(context.Context, string, int) (services.UsersPage, error)
	checkRank func(context.Context, string) (services.RankCheck, error)
}

func (s stubUsersSvc) List(ctx context.Context, country string, page int) (services.UsersPage, error) {
	if s.list != nil {
		return s.list(ctx, country, page)
	}
	return services.UsersPage{}, nil
}

func (s stubUsersSvc) CheckRank(ctx context.Context, username string) (services.RankCheck, error) {
	if s.checkRank != nil {
		return s.checkRank(ctx, username)
	}
	return services.RankCheck{}, nil
}

func badgeRouter(svc BadgeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc, stubUsersSvc{})
	r.GET("/badge/:username", h.Badge)
	return r
}

// ---------- Badge ----------

func TestBadge_Miss_SetsLongCacheHeaders(t *testing.T) {
	var gotUser string
	var gotTheme badge.Theme
	r := badgeRouter(stubBadgeSvc{
		badge: func(_ context.Context, u string, th badge.Theme) services.BadgeResult {
			gotUser, gotTheme = u, th
			return services.BadgeResult{SVG: "<svg>fresh</svg>"}
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/badge/octocat?theme=ocean", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotUser != "octocat" || gotTheme != badge.ThemeOcean {
		t.Fatalf("service called with user=%q theme=%q", gotUser, gotTheme)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=21600") || !strings.Contains(cc, "stale-while-revalidate=43200") {
		t.Fatalf("cache control = %q", cc)
	}
	if xc := w.Header().Get("X-Cache"); xc != "MISS" {
		t.Fatalf("X-Cache = %q", xc)
	}
	if !strings.Contains(w.Body.String(), "fresh") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestBadge_Hit_ReportsHit(t *testing.T) {
	r := badgeRouter(stubBadgeSvc{
		badge: func(context.Context, string, badge.Theme) services.BadgeResult {
			return services.BadgeResult{SVG: "<svg/>", CacheHit: true}
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/badge/octocat", nil))

	if xc := w.Header().Get("X-Cache"); xc != "HIT" {
		t.Fatalf("X-Cache = %q", xc)
	}
}

func TestBadge_ErrorCard_StillOKWithShortCache(t *testing.T) {
	r := badgeRouter(stubBadgeSvc{
		badge: func(context.Context, string, badge.Theme) services.BadgeResult {
			return services.BadgeResult{SVG: "<svg>error</svg>", ErrorCard: true}
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/badge/ghost", nil))

	// Embeds must always render: failures are SVG, never an HTTP error.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Fatalf("cache control = %q", cc)
	}
	if xc := w.Header().Get("X-Cache"); xc != "" {
		t.Fatalf("error card should not advertise cache state, got %q", xc)
	}
}

func TestBadge_UnknownTheme_FallsBackToDark(t *testing.T) {
	var gotTheme badge.Theme
	r := badgeRouter(stubBadgeSvc{
		badge: func(_ context.Context, _ string, th badge.Theme) services.BadgeResult {
			gotTheme = th
			return services.BadgeResult{SVG: "<svg/>"}
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/badge/octocat?theme=neon", nil))

	if gotTheme != badge.ThemeDark {
		t.Fatalf("theme = %q", gotTheme)
	}
}
