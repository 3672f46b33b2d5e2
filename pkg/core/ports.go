package core

import "context"

// Store defines the contract toward the remote persistence endpoint.
// The protocol is full-replace, not incremental: every read returns the
// complete note set and every write transmits the complete note set.
// There is no diffing or merge-by-field, so one stale write can clobber
// the entire remote state; that trade-off is deliberate and kept.
//
// Implementations must fail with a typed error on transport or parse
// failure. Callers treat any failure as "operation did not happen" and
// retain current state.
type Store interface {
	// FetchSnapshot reads the complete remote note set.
	FetchSnapshot(ctx context.Context) ([]Note, error)

	// WriteSnapshot replaces the complete remote note set with the given
	// one.
	WriteSnapshot(ctx context.Context, notes []Note) error
}

// RenderSink is the boundary toward the rendering layer.
//
// The engine calls RenderNotes whenever board state changes structurally
// (create, delete) or through an applied reconciliation — not on pure
// content/position/size mutations during editing or dragging, which the
// render layer already displays and only reports for persistence. The
// render layer in turn must not destroy or rewrite the element holding a
// focused text input across a RenderNotes call.
//
// Both methods are invoked from the engine goroutine; implementations
// must not call back into the engine synchronously.
type RenderSink interface {
	// RenderNotes redraws the board from the given state.
	RenderNotes(notes []Note)

	// SetLoading reports the initial-load indicator state.
	SetLoading(active bool)
}

// NopSink discards all render calls. Useful for headless hosts and tests.
type NopSink struct{}

// RenderNotes implements RenderSink.
func (NopSink) RenderNotes([]Note) {}

// SetLoading implements RenderSink.
func (NopSink) SetLoading(bool) {}

var _ RenderSink = NopSink{}
