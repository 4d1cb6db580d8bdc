package github

import "github.com/prometheus/client_golang/prometheus"

var (
	// upstreamReqs counts actual network calls to GitHub by operation and
	// status class. Locally gated calls never reach the network and are not
	// counted here.
	upstreamReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_upstream_requests_total",
			Help: "Total number of GitHub API calls performed.",
		},
		[]string{"operation", "status"},
	)

	// cacheHits counts upstream-cache hits by operation. Misses equal the
	// corresponding upstream request count.
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_response_cache_hits_total",
			Help: "Total number of upstream responses served from cache.",
		},
		[]string{"operation"},
	)

	// usersSkipped counts users silently dropped by FetchManyUsers because
	// of a non-rate-limit per-user failure.
	usersSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "github_upstream_users_skipped_total",
			Help: "Users dropped from multi-fetch results due to per-user errors.",
		},
	)
)

func init() {
	prometheus.MustRegister(upstreamReqs, cacheHits, usersSkipped)
}
