package dircache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// defaultMetricsNamespace is the namespace used when none is provided
	defaultMetricsNamespace string = "dircache"

	// metricsSubsystem is the subsystem of all directory cache metrics
	metricsSubsystem string = "directories"

	// metricsDirectoryLabel is the label holding the directory name
	metricsDirectoryLabel string = "directory"
)

func (NoopMetrics) Increment(Counter, int64) {}
func (NoopMetrics) Decrement(Counter, int64) {}

// NewPrometheusMetrics initialize Prometheus metrics for monitoring directory caches.
// Metrics are named <namespace>_directories_cache_<counter>.
// When registerer is nil, metrics are not registered.
// Metrics already registered with the same name are reused so multiple
// callers can share the same registerer
func NewPrometheusMetrics(registerer prometheus.Registerer, namespace string) (*PrometheusMetrics, error) {
	if namespace == "" {
		namespace = defaultMetricsNamespace
	}

	m := &PrometheusMetrics{
		hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "cache_hits",
				Help:      "Number of entry lookups served from the cache",
			},
			[]string{metricsDirectoryLabel},
		),
		invalidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "cache_invalidations",
				Help:      "Number of entries invalidated from the cache",
			},
			[]string{metricsDirectoryLabel},
		),
		size: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "cache_size",
				Help:      "Indicates the current number of entries in the cache",
			},
			[]string{metricsDirectoryLabel},
		),
		max: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: metricsSubsystem,
				Name:      "cache_max",
				Help:      "Indicates the highest number of entries ever reached by the cache",
			},
			[]string{metricsDirectoryLabel},
		),
	}

	if registerer == nil {
		return m, nil
	}

	var err error
	if m.hits, err = registerCollector(registerer, m.hits); err != nil {
		return nil, err
	}
	if m.invalidations, err = registerCollector(registerer, m.invalidations); err != nil {
		return nil, err
	}
	if m.size, err = registerCollector(registerer, m.size); err != nil {
		return nil, err
	}
	if m.max, err = registerCollector(registerer, m.max); err != nil {
		return nil, err
	}
	return m, nil
}

// registerCollector registers c or returns the collector
// already registered under the same name
func registerCollector[T prometheus.Collector](registerer prometheus.Registerer, c T) (T, error) {
	if err := registerer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Sink returns the MetricsSink of the provided directory
func (m *PrometheusMetrics) Sink(directory string) MetricsSink {
	return &directoryMetrics{directory: directory, metrics: m}
}

// Forget deletes all series of the provided directory
func (m *PrometheusMetrics) Forget(directory string) {
	labels := prometheus.Labels{metricsDirectoryLabel: directory}
	m.hits.Delete(labels)
	m.invalidations.Delete(labels)
	m.size.Delete(labels)
	m.max.Delete(labels)
}

func (d *directoryMetrics) Increment(counter Counter, delta int64) {
	value := float64(delta)
	switch counter {
	case CounterHits:
		d.metrics.hits.WithLabelValues(d.directory).Add(value)
	case CounterInvalidations:
		d.metrics.invalidations.WithLabelValues(d.directory).Add(value)
	case CounterSize:
		d.metrics.size.WithLabelValues(d.directory).Add(value)
	case CounterMax:
		d.metrics.max.WithLabelValues(d.directory).Add(value)
	}
}

// Decrement only applies to gauges, prometheus counters cannot go down
func (d *directoryMetrics) Decrement(counter Counter, delta int64) {
	value := float64(delta)
	switch counter {
	case CounterSize:
		d.metrics.size.WithLabelValues(d.directory).Sub(value)
	case CounterMax:
		d.metrics.max.WithLabelValues(d.directory).Sub(value)
	}
}
