package dircache

// Entry is the contract a directory entry must honor to be cached.
// The cache never looks at the entry attributes, it only clones
// entries on read and carries their read-only flag
type Entry[E any] interface {
	// Clone returns a copy of the entry that shares no mutable state with it
	Clone() (E, error)

	// IsReadOnly returns true when the entry must not be modified by callers
	IsReadOnly() bool

	// SetReadOnly flags the entry as read-only or not
	SetReadOnly(readOnly bool)
}

// EntrySource is implemented by directory sessions and allow the cache
// to fetch an entry from the authoritative backend.
// found is false when the backend does not know the provided id
type EntrySource[E any] interface {
	FetchFromSource(id string, fetchReferences bool) (entry E, found bool, err error)
}

// EntrySourceFunc is an adapter allowing the use of a plain function as EntrySource
type EntrySourceFunc[E any] func(id string, fetchReferences bool) (E, bool, error)

// FetchFromSource calls f(id, fetchReferences)
func (f EntrySourceFunc[E]) FetchFromSource(id string, fetchReferences bool) (E, bool, error) {
	return f(id, fetchReferences)
}
