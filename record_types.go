package dircache

// Record is a directory entry made of fields and references
// to entries of other directories
type Record struct {
	// ID is the unique identifier of the entry within its directory
	ID string `json:"id"`

	// Fields hold the entry attributes
	Fields map[string]any `json:"fields"`

	// References hold, by reference name, the ids of the referenced entries
	References map[string][]string `json:"references,omitempty"`

	// readOnly is true when callers must not modify the entry
	readOnly bool
}
