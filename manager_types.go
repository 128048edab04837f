package dircache

import (
	"sync"

	"github.com/rs/zerolog"
)

// ManagerOptions hold the requirements shared by all caches of a Manager
type ManagerOptions struct {
	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// Metrics is used to build the MetricsSink of each directory.
	// When nil, metrics are not reported
	Metrics *PrometheusMetrics
}

// Manager holds the caches of all configured directories
type Manager[E Entry[E]] struct {
	// mu hold locking mecanism
	mu sync.RWMutex

	// caches hold directory caches by directory name
	caches map[string]*DirectoryCache[E]

	// names hold directory names in configuration order
	names []string
}
