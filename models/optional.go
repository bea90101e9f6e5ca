package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a presence-aware container for PATCH-like payloads.
//
// Set is true whenever the key appeared in the JSON document, including
// when its value was null. That distinguishes "leave unchanged" (absent)
// from "clear" (present null) for pointer-typed T.
//
// Null is true when the key was present with a JSON null value. For
// non-pointer T the Value is then the zero value, so callers that cannot
// accept a clear must reject Null explicitly.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Null = bytes.Equal(bytes.TrimSpace(b), []byte("null"))
	return json.Unmarshal(b, &o.Value)
}

// MarshalJSON implements [json.Marshaler]. Absent and Null values marshal
// as null;
// use omitzero on the field to drop them from the document.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero reports whether the value is absent. It lets `omitzero` skip
// absent fields when a patch is marshaled by a client.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}
