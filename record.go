package dircache

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"time"
)

// NewRecord returns an empty record with the provided id
func NewRecord(id string) *Record {
	return &Record{
		ID:     id,
		Fields: make(map[string]any),
	}
}

// Get returns the value of the provided field
func (r *Record) Get(field string) (any, bool) {
	value, ok := r.Fields[field]
	return value, ok
}

// Set changes the value of the provided field
func (r *Record) Set(field string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[field] = value
}

// SetReferences replaces the ids referenced under the provided name
func (r *Record) SetReferences(name string, ids []string) {
	if r.References == nil {
		r.References = make(map[string][]string)
	}
	r.References[name] = slices.Clone(ids)
}

// HasReferences returns true when at least one reference is set
func (r *Record) HasReferences() bool {
	return len(r.References) > 0
}

// IsReadOnly returns true when callers must not modify the entry
func (r *Record) IsReadOnly() bool {
	return r.readOnly
}

// SetReadOnly flags the entry as read-only or not
func (r *Record) SetReadOnly(readOnly bool) {
	r.readOnly = readOnly
}

// Clone returns a deep copy of the record.
// The read-only flag is not copied.
// An error is returned when a field holds a value that cannot be copied safely
func (r *Record) Clone() (*Record, error) {
	if r == nil {
		return nil, ErrNilRecord
	}

	fields, err := cloneFields(r.Fields)
	if err != nil {
		return nil, fmt.Errorf("fail to clone record %s: %w", r.ID, err)
	}

	clone := &Record{ID: r.ID, Fields: fields}
	if r.References != nil {
		clone.References = make(map[string][]string, len(r.References))
		for name, ids := range r.References {
			clone.References[name] = slices.Clone(ids)
		}
	}
	return clone, nil
}

// WithoutReferences returns a deep copy of the record without its references
func (r *Record) WithoutReferences() (*Record, error) {
	clone, err := r.Clone()
	if err != nil {
		return nil, err
	}
	clone.References = nil
	clone.readOnly = r.readOnly
	return clone, nil
}

// Equal returns true when both records have the same id, fields and references
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.ID != other.ID || len(r.Fields) != len(other.Fields) {
		return false
	}
	for field, value := range r.Fields {
		otherValue, ok := other.Fields[field]
		if !ok || !equalValue(value, otherValue) {
			return false
		}
	}
	return maps.EqualFunc(r.References, other.References, slices.Equal)
}

func cloneFields(fields map[string]any) (map[string]any, error) {
	if fields == nil {
		return nil, nil
	}
	clone := make(map[string]any, len(fields))
	for field, value := range fields {
		v, err := cloneValue(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		clone[field] = v
	}
	return clone, nil
}

func cloneValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case []byte:
		return bytes.Clone(v), nil
	case []string:
		return slices.Clone(v), nil
	case []any:
		if v == nil {
			return v, nil
		}
		clone := make([]any, len(v))
		for i, item := range v {
			c, err := cloneValue(item)
			if err != nil {
				return nil, err
			}
			clone[i] = c
		}
		return clone, nil
	case map[string]any:
		return cloneFields(v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUncloneableValue, value)
	}
}

// equalValue compares values produced by cloneValue
func equalValue(a, b any) bool {
	switch av := a.(type) {
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	case []string:
		bv, ok := b.([]string)
		return ok && slices.Equal(av, bv)
	case []any:
		bv, ok := b.([]any)
		return ok && slices.EqualFunc(av, bv, equalValue)
	case map[string]any:
		bv, ok := b.(map[string]any)
		return ok && maps.EqualFunc(av, bv, equalValue)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return reflect.DeepEqual(a, b)
	}
}
