package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Domain collectors. HTTP-level metrics live in the middleware package; the
// ones here describe what the service does with prints and votes.
var (
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prints_cache_lookups_total",
			Help: "Print cache lookups by cache name and result (hit/miss).",
		},
		[]string{"cache", "result"},
	)

	upstreamReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sejm_api_requests_total",
			Help: "Requests made to the Sejm API by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	upstreamLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "sejm_api_request_duration_seconds",
			Help: "Duration of Sejm API requests in seconds.",
			// The list endpoint returns a whole term in one body.
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"op"},
	)

	voteActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_actions_total",
			Help: "Vote mutations by action (created/updated/removed).",
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups, upstreamReqs, upstreamLat, voteActions)
}

// ObserveCache records a cache lookup.
func ObserveCache(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveUpstream records one Sejm API call.
func ObserveUpstream(op, outcome string, d time.Duration) {
	upstreamReqs.WithLabelValues(op, outcome).Inc()
	upstreamLat.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveVote records a vote mutation.
func ObserveVote(action string) {
	voteActions.WithLabelValues(action).Inc()
}
