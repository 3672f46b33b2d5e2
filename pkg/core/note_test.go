package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewNoteID(now)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewNoteID_TimePrefix(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	id := NewNoteID(at)
	assert.Contains(t, id, fmt.Sprintf("note-%d-", at.UnixMilli()))
}

func TestNewNote_Defaults(t *testing.T) {
	n := NewNote(time.Now())
	assert.NotEmpty(t, n.ID)
	assert.Empty(t, n.Content)
	assert.Equal(t, float64(DefaultNoteX), n.X)
	assert.Equal(t, float64(DefaultNoteY), n.Y)
	assert.Equal(t, float64(DefaultNoteWidth), n.Width)
	assert.Equal(t, float64(DefaultNoteHeight), n.Height)
}
