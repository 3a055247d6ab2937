package sheet

import (
	"bytes"
	"encoding/json"
)

// Record is a single worksheet row as an insertion-ordered set of named
// fields. Source cells are text values keyed by the header row; the
// derivation stage appends numeric fields after them. Marshalling preserves
// insertion order, so the JSON written for a record always lists the source
// columns first, in header order, followed by any derived fields.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{
		keys:   []string{},
		values: map[string]any{},
	}
}

// Set stores a text field. Setting an existing key overwrites the value in
// place without changing its position, so duplicate header names collapse to
// a single field with the last value winning.
func (r *Record) Set(key, value string) {
	r.set(key, value)
}

// SetNumber stores a numeric field, appending it after the existing fields
// unless the key is already present.
func (r *Record) SetNumber(key string, value float64) {
	r.set(key, value)
}

func (r *Record) set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Get returns the text value for a field. The second return value is false
// if the field is absent or not text - an empty string value is a present
// field, distinct from a missing one.
func (r *Record) Get(key string) (string, bool) {
	if v, ok := r.values[key].(string); ok {
		return v, true
	}

	return "", false
}

// Number returns the numeric value for a field, false if the field is absent
// or not numeric.
func (r *Record) Number(key string) (float64, bool) {
	if v, ok := r.values[key].(float64); ok {
		return v, true
	}

	return 0, false
}

// Has returns true if the field is present, regardless of its type.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]

	return ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

func (r *Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}

		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}
