package core

// Command is a typed gesture from the interaction layer, consumed by the
// engine's coordinator loop. Explicit commands instead of callback wiring
// keep the engine deterministic to unit test without a live render layer.
type Command interface {
	isCommand()
}

// CreateNote requests a new note with default geometry. The engine assigns
// the ID.
type CreateNote struct{}

// DeleteNote removes the note with the given ID from the board.
type DeleteNote struct {
	ID string
}

// EditContent replaces a note's text content. Typically issued once per
// keystroke by the render layer; the engine coalesces the resulting
// writes.
type EditContent struct {
	ID      string
	Content string
}

// MoveNote records a note's new top-left position after (or during) a
// drag. It reaches the core for persistence only; the render layer has
// already drawn the move.
type MoveNote struct {
	ID string
	X  float64
	Y  float64
}

// ResizeNote records a note's new bounding box.
type ResizeNote struct {
	ID     string
	Width  float64
	Height float64
}

// SelectNote marks a note as the current selection target, e.g. for a
// subsequent DeleteNote on "the selected note".
type SelectNote struct {
	ID string
}

// BeginInteraction flags a note as actively dragged or resized. While the
// flag is set, polling is suppressed and reconciliation must not clobber
// the note's live geometry.
type BeginInteraction struct {
	ID string
}

// EndInteraction clears the interaction flag for the given note.
type EndInteraction struct {
	ID string
}

func (CreateNote) isCommand()       {}
func (DeleteNote) isCommand()       {}
func (EditContent) isCommand()      {}
func (MoveNote) isCommand()         {}
func (ResizeNote) isCommand()       {}
func (SelectNote) isCommand()       {}
func (BeginInteraction) isCommand() {}
func (EndInteraction) isCommand()   {}
