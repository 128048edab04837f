package server

// Entry is the json representation of a directory entry
type Entry struct {
	ID         string              `json:"id"`
	Fields     map[string]any      `json:"fields" binding:"required"`
	References map[string][]string `json:"references,omitempty"`
	ReadOnly   bool                `json:"readOnly"`
}

// InvalidateRequest holds the ids to invalidate
type InvalidateRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
