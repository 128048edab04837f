package dircache

import (
	"strings"
	"time"

	"github.com/Lord-Y/dircache/logger"
)

// NewDirectoryCache allow us to configure the cache with the provided options
func NewDirectoryCache[E Entry[E]](options Options) (*DirectoryCache[E], error) {
	if strings.TrimSpace(options.Name) == "" {
		return nil, ErrDirectoryNameRequired
	}
	if options.Logger == nil {
		options.Logger = logger.NewLogger()
	}
	if options.Metrics == nil {
		options.Metrics = NoopMetrics{}
	}

	dc := &DirectoryCache[E]{
		Logger:            options.Logger,
		name:              options.Name,
		dedupFetches:      options.DedupFetches,
		withReferences:    newEntryStore[E](),
		withoutReferences: newEntryStore[E](),
		metrics:           options.Metrics,
		now:               time.Now,
	}
	dc.timeout.Store(int64(options.Timeout))
	dc.maxSize.Store(int64(options.MaxSize))
	return dc, nil
}

// Name returns the name of the directory owning the cache
func (dc *DirectoryCache[E]) Name() string {
	return dc.name
}

// Timeout returns the amount of time new entries are kept in cache
func (dc *DirectoryCache[E]) Timeout() time.Duration {
	return time.Duration(dc.timeout.Load())
}

// SetTimeout changes the timeout of entries cached from now on.
// Already cached entries keep their expiration date
func (dc *DirectoryCache[E]) SetTimeout(timeout time.Duration) {
	dc.timeout.Store(int64(timeout))
}

// MaxSize returns the maximum number of entries per store
func (dc *DirectoryCache[E]) MaxSize() int {
	return int(dc.maxSize.Load())
}

// SetMaxSize changes the maximum number of entries per store.
// The new limit is checked on the next insertion
func (dc *DirectoryCache[E]) SetMaxSize(maxSize int) {
	dc.maxSize.Store(int64(maxSize))
}

// Enabled returns true when MaxSize is greater than zero
func (dc *DirectoryCache[E]) Enabled() bool {
	return dc.maxSize.Load() > 0
}

// Get returns the entry with its references resolved.
// It's a shortcut of GetEntry(id, source, true)
func (dc *DirectoryCache[E]) Get(id string, source EntrySource[E]) (E, bool, error) {
	return dc.GetEntry(id, source, true)
}

// GetEntry return the entry from cache when it exists and is not expired
// otherwise it is fetched from the source and cached.
// Returned entries are clones of the cached ones so callers can modify them.
// When the cache is disabled, the source result is returned as is.
// Source errors are returned unchanged and nothing is cached
func (dc *DirectoryCache[E]) GetEntry(id string, source EntrySource[E], fetchReferences bool) (entry E, found bool, err error) {
	if id == "" {
		return entry, false, ErrEntryIDRequired
	}
	if !dc.Enabled() {
		return source.FetchFromSource(id, fetchReferences)
	}

	store := dc.store(fetchReferences)
	if ce, ok := store.get(id, dc.now()); ok {
		dc.counters.hits.Add(1)
		dc.metrics.Increment(CounterHits, 1)
		entry, found = ce.entry, ce.found
	} else {
		if entry, found, err = dc.fetch(store, id, source, fetchReferences); err != nil {
			var zero E
			return zero, false, err
		}
	}

	if !found {
		var zero E
		return zero, false, nil
	}
	return dc.clone(id, entry), true, nil
}

// store returns the store matching fetchReferences
func (dc *DirectoryCache[E]) store(fetchReferences bool) *entryStore[E] {
	if fetchReferences {
		return dc.withReferences
	}
	return dc.withoutReferences
}

// fetch retrieves the entry from the source and caches it.
// Concurrent fetches of the same id are shared when dedupFetches is set
func (dc *DirectoryCache[E]) fetch(store *entryStore[E], id string, source EntrySource[E], fetchReferences bool) (E, bool, error) {
	if !dc.dedupFetches {
		return dc.fetchAndStore(store, id, source, fetchReferences)
	}

	result, err, _ := store.group.Do(id, func() (any, error) {
		entry, found, err := dc.fetchAndStore(store, id, source, fetchReferences)
		return fetchResult[E]{entry: entry, found: found}, err
	})
	if err != nil {
		var zero E
		return zero, false, err
	}
	r := result.(fetchResult[E])
	return r.entry, r.found, nil
}

func (dc *DirectoryCache[E]) fetchAndStore(store *entryStore[E], id string, source EntrySource[E], fetchReferences bool) (E, bool, error) {
	entry, found, err := source.FetchFromSource(id, fetchReferences)
	if err != nil {
		return entry, false, err
	}

	maxSize := dc.MaxSize()
	var flushed int
	store.put(id, newCachedEntry(entry, found, dc.now(), dc.Timeout()), maxSize, func(added bool, f int) {
		flushed = f
		if flushed > 0 {
			dc.decrementSize(int64(flushed))
		}
		if added {
			dc.incrementSize(1)
		}
	})

	if flushed > 0 {
		dc.Logger.Warn().
			Str("directory", dc.name).
			Int("maxSize", maxSize).
			Int("flushed", flushed).
			Bool("fetchReferences", fetchReferences).
			Msgf("Directory cache max size for %s is too small, flushing", dc.name)
	}
	return entry, found, nil
}

// clone returns a copy of the cached entry with the read-only flag propagated.
// If the entry cannot be cloned, the cached instance is returned
func (dc *DirectoryCache[E]) clone(id string, entry E) E {
	clone, err := entry.Clone()
	if err != nil {
		dc.Logger.Warn().Err(err).
			Str("directory", dc.name).
			Str("entryId", id).
			Msg("Fail to clone cached entry, returning cached instance")
		return entry
	}
	if entry.IsReadOnly() {
		clone.SetReadOnly(true)
	}
	return clone
}

// Invalidate removes the provided ids from both stores.
// Unknown ids are ignored
func (dc *DirectoryCache[E]) Invalidate(ids ...string) {
	if !dc.Enabled() || len(ids) == 0 {
		return
	}

	dc.lockStores()
	defer dc.unlockStores()

	var invalidated, removed int64
	for _, id := range ids {
		withRefs := dc.withReferences.remove(id)
		withoutRefs := dc.withoutReferences.remove(id)
		if withRefs {
			removed++
		}
		if withoutRefs {
			removed++
		}
		if withRefs || withoutRefs {
			invalidated++
		}
	}

	if removed > 0 {
		dc.decrementSize(removed)
	}
	if invalidated > 0 {
		dc.counters.invalidations.Add(invalidated)
		dc.metrics.Increment(CounterInvalidations, invalidated)
	}
}

// InvalidateAll removes all entries from both stores at once
func (dc *DirectoryCache[E]) InvalidateAll() {
	if !dc.Enabled() {
		return
	}

	dc.lockStores()
	defer dc.unlockStores()

	total := int64(dc.withReferences.flush() + dc.withoutReferences.flush())
	if total == 0 {
		return
	}
	dc.decrementSize(total)
	dc.counters.invalidations.Add(total)
	dc.metrics.Increment(CounterInvalidations, total)
	dc.Logger.Debug().Str("directory", dc.name).Int64("invalidated", total).Msg("Directory cache flushed")
}

// Len returns the number of entries held by both stores,
// expired ones included
func (dc *DirectoryCache[E]) Len() int {
	return dc.withReferences.len() + dc.withoutReferences.len()
}

// Stats returns a snapshot of the cache counters
func (dc *DirectoryCache[E]) Stats() Stats {
	return Stats{
		Hits:          dc.counters.hits.Load(),
		Invalidations: dc.counters.invalidations.Load(),
		Size:          dc.counters.size.Load(),
		Max:           dc.counters.max.Load(),
	}
}

// lockStores locks both stores, always in the same order
func (dc *DirectoryCache[E]) lockStores() {
	dc.withReferences.mu.Lock()
	dc.withoutReferences.mu.Lock()
}

func (dc *DirectoryCache[E]) unlockStores() {
	dc.withoutReferences.mu.Unlock()
	dc.withReferences.mu.Unlock()
}

func (dc *DirectoryCache[E]) decrementSize(delta int64) {
	dc.counters.size.Add(-delta)
	dc.metrics.Decrement(CounterSize, delta)
}

// incrementSize raises size and max when the new size is the highest seen
func (dc *DirectoryCache[E]) incrementSize(delta int64) {
	size := dc.counters.size.Add(delta)
	dc.metrics.Increment(CounterSize, delta)

	for {
		current := dc.counters.max.Load()
		if size <= current {
			return
		}
		if dc.counters.max.CompareAndSwap(current, size) {
			dc.metrics.Increment(CounterMax, size-current)
			return
		}
	}
}
