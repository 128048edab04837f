package dircache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedEntry holds the entry with its expiration date
type cachedEntry[E any] struct {
	// entry is the value returned by the source
	entry E

	// found is false when the source did not know the entry.
	// Such misses are cached too
	found bool

	// expireAt is the date after which the entry must be fetched again.
	// Zero value means the entry never expires
	expireAt time.Time
}

// entryStore is a bounded map of cached entries.
// A directory cache holds two of them, one for entries fetched with
// their references and one for entries fetched without
type entryStore[E any] struct {
	// mu hold locking mecanism
	mu sync.RWMutex

	// entries hold cached entries by entry id
	entries map[string]*cachedEntry[E]

	// group deduplicates concurrent fetches of the same id
	// when enabled on the cache
	group singleflight.Group
}
