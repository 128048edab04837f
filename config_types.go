package dircache

// DirectoryConfig holds the cache settings of a single directory
type DirectoryConfig struct {
	// Name of the directory. It's required and must be unique
	Name string `yaml:"name"`

	// CacheTimeout is the number of seconds an entry is kept in cache.
	// Zero or negative value means entries are kept until invalidated
	CacheTimeout int `yaml:"cacheTimeout"`

	// CacheMaxSize is the maximum number of entries per store.
	// Zero or negative value disables the cache
	CacheMaxSize int `yaml:"cacheMaxSize"`

	// ReadOnly flags all directory entries as read-only
	ReadOnly bool `yaml:"readOnly"`

	// DedupFetches shares source fetches between concurrent misses
	DedupFetches bool `yaml:"dedupFetches"`
}

// Config holds all directories settings
type Config struct {
	// MetricsNamespace is the namespace of all prometheus metrics.
	// Default to dircache
	MetricsNamespace string `yaml:"metricsNamespace"`

	// Directories holds the settings of each directory
	Directories []DirectoryConfig `yaml:"directories"`
}
