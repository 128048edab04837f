package dircache

import (
	"fmt"

	"github.com/Lord-Y/dircache/logger"
)

// NewManager builds one cache per directory of the provided config
func NewManager[E Entry[E]](config *Config, options ManagerOptions) (*Manager[E], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.Logger == nil {
		options.Logger = logger.NewLogger()
	}

	m := &Manager[E]{caches: make(map[string]*DirectoryCache[E], len(config.Directories))}
	for _, directory := range config.Directories {
		var sink MetricsSink = NoopMetrics{}
		if options.Metrics != nil {
			sink = options.Metrics.Sink(directory.Name)
		}

		cache, err := NewDirectoryCache[E](Options{
			Name:         directory.Name,
			Timeout:      directory.Timeout(),
			MaxSize:      directory.CacheMaxSize,
			DedupFetches: directory.DedupFetches,
			Logger:       options.Logger,
			Metrics:      sink,
		})
		if err != nil {
			return nil, fmt.Errorf("fail to create cache of directory %s: %w", directory.Name, err)
		}
		m.caches[directory.Name] = cache
		m.names = append(m.names, directory.Name)

		options.Logger.Debug().
			Str("directory", directory.Name).
			Int("maxSize", directory.CacheMaxSize).
			Dur("timeout", directory.Timeout()).
			Msg("Directory cache configured")
	}
	return m, nil
}

// Cache returns the cache of the provided directory
func (m *Manager[E]) Cache(name string) (*DirectoryCache[E], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cache, ok := m.caches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDirectory, name)
	}
	return cache, nil
}

// Names returns directory names in configuration order
func (m *Manager[E]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.names...)
}

// InvalidateAll flushes the caches of all directories
func (m *Manager[E]) InvalidateAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, name := range m.names {
		m.caches[name].InvalidateAll()
	}
}

// Stats returns the counters of all directory caches
func (m *Manager[E]) Stats() map[string]Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]Stats, len(m.caches))
	for name, cache := range m.caches {
		stats[name] = cache.Stats()
	}
	return stats
}
