// ABOUTME: Prometheus metrics for the clipper API
// ABOUTME: Counters and histograms registered with promauto

// Package metrics provides Prometheus metrics for the clipper API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clipper"

var (
	// ClipOperationsTotal counts clip list mutations and lookups.
	ClipOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clip_operations_total",
			Help:      "Total number of clip operations",
		},
		[]string{"operation", "status"},
	)

	// SearchRequestsTotal counts article searches by outcome.
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of article searches",
		},
		[]string{"status"},
	)

	// SearchDuration measures provider fetch duration.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_provider_duration_seconds",
			Help:      "Duration of search provider fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// SearchCacheTotal counts search cache lookups by result.
	SearchCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_total",
			Help:      "Search cache lookups by result",
		},
		[]string{"result"},
	)
)

// Status labels
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// status returns the label for an operation's error
func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// RecordClipOperation records one clip service call.
func RecordClipOperation(operation string, err error) {
	ClipOperationsTotal.WithLabelValues(operation, status(err)).Inc()
}

// RecordSearch records one article search.
func RecordSearch(err error) {
	SearchRequestsTotal.WithLabelValues(status(err)).Inc()
}

// ObserveProviderFetch records how long a provider fetch took.
func ObserveProviderFetch(seconds float64) {
	SearchDuration.Observe(seconds)
}

// RecordSearchCache records a cache hit or miss.
func RecordSearchCache(hit bool) {
	if hit {
		SearchCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	SearchCacheTotal.WithLabelValues("miss").Inc()
}
