// Package optional distinguishes "field absent from the payload" from
// "field explicitly set to null" in JSON patch bodies. A plain pointer
// collapses both cases to nil, which breaks partial-update semantics
// where null means "clear this value".
package optional

import "encoding/json"

// Field is a tri-state JSON value: unset, explicit null, or a value.
// The zero Field is unset.
type Field[T any] struct {
	value T
	set   bool
	valid bool
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, valid: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the field appeared in the payload at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field appeared as an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && !f.valid
}

// Value returns the held value and whether one is present.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.set && f.valid
}

// Or returns the held value, or fallback when the field is unset or null.
func (f Field[T]) Or(fallback T) T {
	if f.set && f.valid {
		return f.value
	}
	return fallback
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
