package feedcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFresh     = "fresh"
	outcomeStale     = "stale"
	outcomeError     = "error"
	outcomeDiscarded = "discarded"
)

var (
	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_loads_total",
			Help: "Feed page loads by outcome",
		},
		[]string{"outcome"},
	)

	invalidationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_cache_invalidations_total",
			Help: "Feed page snapshot invalidations",
		},
	)
)
