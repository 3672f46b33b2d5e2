package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSnapshot(t *testing.T) {
	a := Note{ID: "a", Content: "hi", X: 50, Y: 50, Width: 260, Height: 200}
	b := Note{ID: "b", Content: "other", X: 10, Y: 20, Width: 100, Height: 80}

	t.Run("Identical", func(t *testing.T) {
		assert.True(t, SameSnapshot([]Note{a, b}, []Note{a, b}))
	})

	t.Run("Nil Equals Empty", func(t *testing.T) {
		assert.True(t, SameSnapshot(nil, []Note{}))
	})

	t.Run("Order Matters", func(t *testing.T) {
		assert.False(t, SameSnapshot([]Note{a, b}, []Note{b, a}))
	})

	t.Run("Field Difference", func(t *testing.T) {
		moved := a
		moved.X = 51
		assert.False(t, SameSnapshot([]Note{a}, []Note{moved}))
	})

	t.Run("Missing Element", func(t *testing.T) {
		assert.False(t, SameSnapshot([]Note{a, b}, []Note{a}))
	})
}
