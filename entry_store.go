package dircache

import "time"

// newCachedEntry wraps the entry with an expiration date computed from timeout
func newCachedEntry[E any](entry E, found bool, now time.Time, timeout time.Duration) *cachedEntry[E] {
	ce := &cachedEntry[E]{entry: entry, found: found}
	if timeout > 0 {
		ce.expireAt = now.Add(timeout)
	}
	return ce
}

// isExpired return true if the cachedEntry is expired
func (c *cachedEntry[E]) isExpired(now time.Time) bool {
	return !c.expireAt.IsZero() && !now.Before(c.expireAt)
}

func newEntryStore[E any]() *entryStore[E] {
	return &entryStore[E]{entries: make(map[string]*cachedEntry[E])}
}

// get returns the cached entry when it exists and is not expired
func (s *entryStore[E]) get(id string, now time.Time) (*cachedEntry[E], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ce, ok := s.entries[id]
	if !ok || ce.isExpired(now) {
		return nil, false
	}
	return ce, true
}

// put stores the entry. When id is not already in the store and maxSize
// entries are already there, the whole store is flushed first.
// onStore is called while the lock is still held with whether the id
// is new and how many entries were flushed
func (s *entryStore[E]) put(id string, ce *cachedEntry[E], maxSize int, onStore func(added bool, flushed int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		added   bool
		flushed int
	)
	if _, ok := s.entries[id]; !ok {
		if maxSize > 0 && len(s.entries) >= maxSize {
			flushed = s.flush()
		}
		added = true
	}
	s.entries[id] = ce

	if onStore != nil {
		onStore(added, flushed)
	}
}

// remove deletes id from the store and return true if it was there.
// Caller must hold the lock
func (s *entryStore[E]) remove(id string) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// flush deletes all entries and return how many were there.
// Caller must hold the lock
func (s *entryStore[E]) flush() int {
	total := len(s.entries)
	clear(s.entries)
	return total
}

// len returns the number of entries, expired ones included
func (s *entryStore[E]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
