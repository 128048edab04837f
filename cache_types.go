package dircache

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options hold all cache options that will be later
// used by DirectoryCache
type Options struct {
	// Name is the name of the directory owning the cache. It's required
	Name string

	// Timeout is the amount of time an entry is kept in cache.
	// Zero or negative value means entries are kept until invalidated
	Timeout time.Duration

	// MaxSize is the maximum number of entries per store.
	// Zero or negative value disables the cache.
	// When the limit is reached, the whole store is flushed
	MaxSize int

	// DedupFetches when set to true will share a single source fetch
	// between concurrent lookups of the same missing entry
	DedupFetches bool

	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// Metrics receives counters updates.
	// Default to NoopMetrics
	Metrics MetricsSink
}

// Stats is a snapshot of the cache counters
type Stats struct {
	// Hits is the number of lookups served from the cache
	Hits int64 `json:"hits"`

	// Invalidations is the number of invalidated entries
	Invalidations int64 `json:"invalidations"`

	// Size is the current number of cached entries
	Size int64 `json:"size"`

	// Max is the highest size ever reached
	Max int64 `json:"max"`
}

// counters holds the cache counters
type counters struct {
	hits          atomic.Int64
	invalidations atomic.Int64
	size          atomic.Int64
	max           atomic.Int64
}

// fetchResult is the value shared between deduplicated fetches
type fetchResult[E any] struct {
	entry E
	found bool
}

// DirectoryCache memoizes directory entry lookups by id
type DirectoryCache[E Entry[E]] struct {
	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// name of the directory owning the cache
	name string

	// timeout is the time.Duration applied to newly cached entries
	timeout atomic.Int64

	// maxSize is the maximum number of entries per store
	maxSize atomic.Int64

	// dedupFetches share source fetches between concurrent misses
	dedupFetches bool

	// withReferences hold entries fetched with their references
	withReferences *entryStore[E]

	// withoutReferences hold entries fetched without their references
	withoutReferences *entryStore[E]

	// counters hold hits, invalidations, size and max
	counters counters

	// metrics receives counters updates
	metrics MetricsSink

	// now returns the current time, overridden in unit testing
	now func() time.Time
}
