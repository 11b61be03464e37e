// Package optional provides an explicit present/absent wrapper for fields the
// upstream API may omit, so callers must handle the absent case.
package optional

import (
	"bytes"
	"encoding/json"
	"strings"
)

var jsonNull = []byte("null")

// Value holds a T that may be absent. The zero Value is absent.
type Value[T any] struct {
	val   T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, valid: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr converts a nil-able pointer into a Value.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// String returns an absent value for blank strings.
func String(s string) Value[string] {
	if strings.TrimSpace(s) == "" {
		return None[string]()
	}
	return Some(s)
}

// StringPtr is String for nil-able wire fields.
func StringPtr(p *string) Value[string] {
	if p == nil {
		return None[string]()
	}
	return String(*p)
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.valid
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.valid
}

// OrElse returns the held value or def when absent.
func (v Value[T]) OrElse(def T) T {
	if v.valid {
		return v.val
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (v Value[T]) Ptr() *T {
	if !v.valid {
		return nil
	}
	out := v.val
	return &out
}

// MarshalJSON encodes absent values as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return jsonNull, nil
	}
	return json.Marshal(v.val)
}

// UnmarshalJSON treats null as absent. A missing key never calls this and
// leaves the zero (absent) Value in place.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = None[T]()
		return nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*v = Some(out)
	return nil
}
