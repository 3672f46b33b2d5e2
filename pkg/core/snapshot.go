package core

import (
	"bytes"
	"encoding/json"
)

// Canonicalize renders a note sequence into its canonical comparable form:
// deterministic JSON of the ordered sequence. Two snapshots are the same
// board state iff their canonical bytes are equal (same IDs, same fields,
// same order). A nil sequence canonicalizes the same as an empty one.
func Canonicalize(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	return json.Marshal(notes)
}

// SameSnapshot reports whether two note sequences are element-for-element
// identical in canonical form. Sequences that fail to canonicalize (e.g.
// NaN coordinates, which are off-contract) are never considered equal.
func SameSnapshot(a, b []Note) bool {
	ca, err := Canonicalize(a)
	if err != nil {
		return false
	}
	cb, err := Canonicalize(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}
