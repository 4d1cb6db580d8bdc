package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RoutePatternFallbackAndInflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	// Badge responses have a body, so the size histogram is observed.
	r.GET("/badge/:username", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/svg+xml", []byte("<svg/>"))
	})

	// A 204 leaves the writer size at -1, skipping the size observation.
	r.GET("/github/users", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Baselines guard against other tests incrementing the shared series.
	baseBadge := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/badge/:username", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/badge/octocat", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /badge/octocat -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /does-not-exist -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/github/users", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("GET /github/users -> %d", w.Code)
	}

	// Every /badge/<login> hit lands on the shared route-pattern series.
	gotBadge := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/badge/:username", "200"))
	if gotBadge != baseBadge+1 {
		t.Fatalf("badge counter = %v; want %v", gotBadge, baseBadge+1)
	}

	// Unmatched routes fall back to the raw URL path.
	got404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404"))
	if got404 != base404+1 {
		t.Fatalf("404 fallback counter = %v; want %v", got404, base404+1)
	}

	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0 once requests complete", inFlight)
	}
}
