package core

// Board is the authoritative local collection of note records, kept in
// creation/remote order (order is not display priority). Every note ID in
// the sequence is unique.
//
// Board has no internal locking. All operations must run on the engine
// goroutine, which is the single reader and writer; see pkg/engine for the
// scheduling model.
type Board struct {
	notes []Note
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// All returns a copy of the current sequence, safe to hand to sinks or
// the remote store.
func (b *Board) All() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// Get returns the note with matching ID.
func (b *Board) Get(id string) (Note, bool) {
	for _, n := range b.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Upsert locates the note with matching ID and applies mutate to it.
// It reports whether a note was found; an absent ID is a no-op.
func (b *Board) Upsert(id string, mutate func(*Note)) bool {
	for i := range b.notes {
		if b.notes[i].ID == id {
			mutate(&b.notes[i])
			return true
		}
	}
	return false
}

// Add appends a note to the sequence.
func (b *Board) Add(n Note) {
	b.notes = append(b.notes, n)
}

// Remove filters out the note with matching ID and reports whether it was
// present.
func (b *Board) Remove(id string) bool {
	for i := range b.notes {
		if b.notes[i].ID == id {
			b.notes = append(b.notes[:i], b.notes[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll swaps the entire sequence for the given one. Used by the
// reconciler when a remote snapshot wins. The input is copied.
func (b *Board) ReplaceAll(notes []Note) {
	b.notes = make([]Note, len(notes))
	copy(b.notes, notes)
}

// Len returns the number of notes on the board.
func (b *Board) Len() int {
	return len(b.notes)
}
