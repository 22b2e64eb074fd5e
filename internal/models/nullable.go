package models

import (
	"encoding/json"
	"time"
)

// Nullable represents an optional field that can distinguish between:
// - Field absent in JSON: Set=false, Valid=false, Value=zero
// - Field present with null: Set=true, Valid=false, Value=zero
// - Field present with value: Set=true, Valid=true, Value=the value
//
// Go's standard JSON unmarshaling treats both "field absent" and
// "field: null" as nil for pointer types, which loses the difference
// between "never rated" and "rating cleared".
type Nullable[T any] struct {
	Value T
	Valid bool // true if Value is not null
	Set   bool // true if field was present in JSON
}

// NullableInt is used for start times, ordering indexes and focus ratings.
type NullableInt = Nullable[int]

// NullableFloat is used for precomputed completion rates.
type NullableFloat = Nullable[float64]

// NullableTime is used for completion timestamps.
type NullableTime = Nullable[time.Time]

// Some returns a valid Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON implements custom JSON unmarshaling for Nullable.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true // Field was present in JSON

	if string(data) == "null" {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = v
	n.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for Nullable.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ToPtr converts Nullable to *T for use with existing code.
// Returns nil if Valid is false, otherwise returns pointer to a copy of Value.
func (n Nullable[T]) ToPtr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Or returns Value when valid and fallback otherwise.
func (n Nullable[T]) Or(fallback T) T {
	if !n.Valid {
		return fallback
	}
	return n.Value
}
