package profile

import "encoding/json"

// TriState distinguishes "user said no" from "user hasn't answered".
// It serializes as JSON null / true / false.
type TriState int

const (
	Unspecified TriState = iota
	Yes
	No
)

// FromBool converts a known answer into a TriState.
func FromBool(b bool) TriState {
	if b {
		return Yes
	}
	return No
}

// Known reports whether the user has answered at all.
func (t TriState) Known() bool { return t != Unspecified }

// Bool returns the answer and whether one was given.
func (t TriState) Bool() (value, ok bool) {
	switch t {
	case Yes:
		return true, true
	case No:
		return false, true
	default:
		return false, false
	}
}

func (t TriState) String() string {
	switch t {
	case Yes:
		return "Sí"
	case No:
		return "No"
	default:
		return "No especificado"
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v == nil:
		*t = Unspecified
	case *v:
		*t = Yes
	default:
		*t = No
	}
	return nil
}
