package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default geometry for a freshly created note, in canvas units.
const (
	DefaultNoteX      = 50
	DefaultNoteY      = 50
	DefaultNoteWidth  = 260
	DefaultNoteHeight = 200
)

// Note is the central entity of the domain.
// It represents a freeform text note positioned on a shared canvas,
// identified by an immutable ID. Coordinates are top-left in canvas space
// and are never clamped: they may be negative or exceed any viewport.
// The core enforces no minimum width or height; that is a render-layer
// concern. JSON tags match the remote store's wire format.
type Note struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// NewNoteID generates a globally unique note identifier: a time-based
// prefix plus a random suffix. The prefix keeps identifiers roughly
// sortable by creation time; the suffix guards against same-millisecond
// collisions across clients.
func NewNoteID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("note-%d-%s", now.UnixMilli(), suffix)
}

// NewNote creates a note with a fresh ID, default geometry and empty
// content.
func NewNote(now time.Time) Note {
	return Note{
		ID:     NewNoteID(now),
		X:      DefaultNoteX,
		Y:      DefaultNoteY,
		Width:  DefaultNoteWidth,
		Height: DefaultNoteHeight,
	}
}
