package dircache

// NewSession returns a session reading backend entries through cache
func NewSession[E Entry[E]](cache *DirectoryCache[E], backend Backend[E]) *Session[E] {
	return &Session[E]{cache: cache, backend: backend}
}

// Cache returns the cache used by the session
func (s *Session[E]) Cache() *DirectoryCache[E] {
	return s.cache
}

// GetEntry returns the entry with its references
func (s *Session[E]) GetEntry(id string) (E, bool, error) {
	return s.cache.GetEntry(id, s.backend, true)
}

// GetEntryWithoutReferences returns the entry without its references
func (s *Session[E]) GetEntryWithoutReferences(id string) (E, bool, error) {
	return s.cache.GetEntry(id, s.backend, false)
}

// CreateEntry creates the entry in the backend.
// The whole cache is invalidated as cached misses or references
// of other entries may now be stale
func (s *Session[E]) CreateEntry(entry E) (string, error) {
	id, err := s.backend.CreateEntry(entry)
	if err != nil {
		return "", err
	}
	s.cache.InvalidateAll()
	return id, nil
}

// UpdateEntry updates the entry in the backend and invalidates it
func (s *Session[E]) UpdateEntry(id string, entry E) error {
	if err := s.backend.UpdateEntry(id, entry); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}

// DeleteEntry deletes the entry from the backend and invalidates it
func (s *Session[E]) DeleteEntry(id string) error {
	if err := s.backend.DeleteEntry(id); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}
