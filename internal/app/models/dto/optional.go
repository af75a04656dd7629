package dto

import (
	"encoding/json"
)

// Optional distinguishes a JSON field that was omitted from one explicitly
// set to null. Plain pointers cannot tell those apart, and the partial
// update contract treats them differently for nullable columns.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked when the key is present in the payload,
// so Set reliably records presence.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON renders the wrapped value, or null when unset or cleared
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
