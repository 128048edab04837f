package dircache

// Backend is a directory backend able to fetch and write entries
type Backend[E any] interface {
	EntrySource[E]

	// CreateEntry stores a new entry and returns its id
	CreateEntry(entry E) (string, error)

	// UpdateEntry replaces the entry with the provided id
	UpdateEntry(id string, entry E) error

	// DeleteEntry removes the entry with the provided id
	DeleteEntry(id string) error
}

// Session reads directory entries through the cache
// and invalidates it on writes
type Session[E Entry[E]] struct {
	// cache is the cache of the directory
	cache *DirectoryCache[E]

	// backend is the authoritative source of entries
	backend Backend[E]
}
