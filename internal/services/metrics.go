package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// badgeCacheLookups counts badge cache reads by outcome ("hit" or
	// "miss"). Error cards are not cached and count as misses.
	badgeCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badge_cache_lookups_total",
			Help: "Total badge cache lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(badgeCacheLookups)
}
