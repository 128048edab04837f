package dircache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is the name of a directory cache counter
type Counter string

const (
	// CounterHits is incremented on every lookup served from the cache
	CounterHits Counter = "hits"

	// CounterInvalidations is incremented for every invalidated entry
	CounterInvalidations Counter = "invalidations"

	// CounterSize follows the number of entries in the cache
	CounterSize Counter = "size"

	// CounterMax is the highest size ever reached by the cache
	CounterMax Counter = "max"
)

// MetricsSink receives the counters updates of a single directory cache
type MetricsSink interface {
	// Increment adds delta to the provided counter
	Increment(counter Counter, delta int64)

	// Decrement substracts delta from the provided counter
	Decrement(counter Counter, delta int64)
}

// NoopMetrics is the MetricsSink used when none is provided
type NoopMetrics struct{}

// PrometheusMetrics holds Prometheus metrics for monitoring directory caches.
// Each directory is a distinct label value
type PrometheusMetrics struct {
	// hits is a counter of lookups served from the cache
	hits *prometheus.CounterVec

	// invalidations is a counter of invalidated entries
	invalidations *prometheus.CounterVec

	// size is a gauge that indicates the current number of cached entries
	size *prometheus.GaugeVec

	// max is a gauge that indicates the highest number of cached entries
	max *prometheus.GaugeVec
}

// directoryMetrics is the MetricsSink of a single directory
type directoryMetrics struct {
	// directory is the label value used for all metrics
	directory string

	// metrics hold the shared prometheus vectors
	metrics *PrometheusMetrics
}
