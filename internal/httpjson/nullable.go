package httpjson

import "encoding/json"

// Nullable tracks whether a JSON field was present at all, and whether
// it carried null or a value. A plain pointer cannot tell "omitted"
// apart from "set to null", which partial updates need.
type Nullable[T any] struct {
	Set   bool // field appeared in the payload
	Valid bool // value was not null
	Val   T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Valid = false
		var zero T
		n.Val = zero
		return nil
	}
	n.Valid = true
	return json.Unmarshal(b, &n.Val)
}
