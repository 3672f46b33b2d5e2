package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_AddAndAll(t *testing.T) {
	b := NewBoard()
	b.Add(Note{ID: "a", Content: "first"})
	b.Add(Note{ID: "b", Content: "second"})

	notes := b.All()
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "b", notes[1].ID)

	// All returns a copy; mutating it must not leak into the board.
	notes[0].Content = "mutated"
	got, ok := b.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", got.Content)
}

func TestBoard_Upsert(t *testing.T) {
	t.Run("Mutates Matching Note", func(t *testing.T) {
		b := NewBoard()
		b.Add(Note{ID: "a", X: 10, Y: 10})

		ok := b.Upsert("a", func(n *Note) {
			n.X = 99
			n.Y = -5
		})
		require.True(t, ok)

		got, _ := b.Get("a")
		assert.Equal(t, 99.0, got.X)
		assert.Equal(t, -5.0, got.Y)
	})

	t.Run("No-op When Absent", func(t *testing.T) {
		b := NewBoard()
		b.Add(Note{ID: "a"})

		called := false
		ok := b.Upsert("missing", func(n *Note) { called = true })
		assert.False(t, ok)
		assert.False(t, called)
		assert.Equal(t, 1, b.Len())
	})
}

func TestBoard_Remove(t *testing.T) {
	b := NewBoard()
	b.Add(Note{ID: "a"})
	b.Add(Note{ID: "b"})
	b.Add(Note{ID: "c"})

	require.True(t, b.Remove("b"))
	assert.False(t, b.Remove("b"))

	notes := b.All()
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
	assert.Equal(t, "c", notes[1].ID)
}

func TestBoard_ReplaceAll(t *testing.T) {
	b := NewBoard()
	b.Add(Note{ID: "local"})

	incoming := []Note{{ID: "r1"}, {ID: "r2"}}
	b.ReplaceAll(incoming)

	require.Equal(t, 2, b.Len())

	// The board owns its copy of the incoming slice.
	incoming[0].Content = "mutated"
	got, _ := b.Get("r1")
	assert.Empty(t, got.Content)
}
