package engine

import (
	"sync"
	"time"

	"github.com/aretw0/introspection"
)

// EngineState exposes internal sync state for observability.
type EngineState struct {
	Notes           int        `json:"notes"`
	WriteInFlight   bool       `json:"write_in_flight"`
	FetchInFlight   bool       `json:"fetch_in_flight"`
	DebouncePending bool       `json:"debounce_pending"`
	InteractingID   string     `json:"interacting_id,omitempty"`
	SelectedID      string     `json:"selected_id,omitempty"`
	LastWriteAt     *time.Time `json:"last_write_at,omitempty"`
	LastReconcile   *time.Time `json:"last_reconcile,omitempty"`
}

// stateExport is the mutex-guarded copy of engine state kept for readers
// outside the engine goroutine. The loop publishes into it; the loop never
// reads from it.
type stateExport struct {
	mu    sync.RWMutex
	state EngineState
}

// exportStats publishes a snapshot of the loop-owned state. Called only
// from the engine goroutine.
func (e *Engine) exportStats() {
	s := EngineState{
		Notes:           e.board.Len(),
		WriteInFlight:   e.writeInFlight,
		FetchInFlight:   e.fetchInFlight,
		DebouncePending: e.debounce != nil,
		InteractingID:   e.interactingID,
		SelectedID:      e.selectedID,
	}
	if !e.lastWriteAt.IsZero() {
		at := e.lastWriteAt
		s.LastWriteAt = &at
	}
	if !e.lastReconcile.IsZero() {
		at := e.lastReconcile
		s.LastReconcile = &at
	}

	e.stats.mu.Lock()
	e.stats.state = s
	e.stats.mu.Unlock()
}

// State implements introspection.Introspectable.
func (e *Engine) State() any {
	e.stats.mu.RLock()
	defer e.stats.mu.RUnlock()
	return e.stats.state
}

// ComponentType implements introspection.Component.
func (e *Engine) ComponentType() string {
	return "sync-engine"
}

var _ introspection.Introspectable = (*Engine)(nil)
var _ introspection.Component = (*Engine)(nil)
