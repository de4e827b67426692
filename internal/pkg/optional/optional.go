// Package optional distinguishes an absent JSON field from an explicit null.
package optional

import "encoding/json"

// String is a tri-state JSON string: absent (Set false), null (Set true, Value nil)
// or a value.
type String struct {
	Set   bool
	Value *string
}

func Of(v string) String {
	return String{Set: true, Value: &v}
}

func Null() String {
	return String{Set: true}
}

// UnmarshalJSON only runs when the key is present in the object.
func (s *String) UnmarshalJSON(data []byte) error {
	s.Set = true
	if string(data) == "null" {
		s.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}

// Present reports whether the key was sent, null or not.
func (s String) Present() bool {
	return s.Set
}

// NonNull returns the value when one was sent and it is not null.
func (s String) NonNull() (*string, bool) {
	if !s.Set || s.Value == nil {
		return nil, false
	}
	return s.Value, true
}

// Truthy reports a non-null, non-empty value.
func (s String) Truthy() bool {
	return s.Set && s.Value != nil && *s.Value != ""
}
