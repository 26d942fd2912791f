package party

import "encoding/json"

// Optional wraps a patch-request field so the service can tell a field that
// was omitted from the JSON body apart from one sent as null or as a zero
// value. Set reports whether the key appeared at all; Valid reports whether
// it carried a non-null value.
type Optional[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// NewOptional builds a present, non-null Optional.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true, Valid: true}
}

// Get returns the wrapped value and whether it is usable (present and non-null).
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && o.Valid
}

// Or returns the wrapped value when present and non-null, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Set && o.Valid {
		return o.Value
	}
	return fallback
}

// Resolve applies patch semantics against a current value: absent keeps
// current, an explicit null clears to the zero value, and a value replaces.
func (o Optional[T]) Resolve(current T) T {
	if !o.Set {
		return current
	}
	if !o.Valid {
		var zero T
		return zero
	}
	return o.Value
}

// UnmarshalJSON is only invoked for keys present in the body, which is what
// makes the absent/null distinction observable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON renders null for absent or null fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
