// Package history implements the undoable mutation engine: cell-diff
// commands that record complete before/after state, merge-compatible
// consecutive edits into single undo steps, and a bounded undo/redo stack.
package history

import (
	"errors"
	"time"
)

// Command errors.
var (
	ErrCannotMerge = errors.New("commands cannot merge")
)

// MergeWindow is the maximum timestamp gap between two commands that may
// still merge into one undo step. A mouse-drag stroke emits commands well
// inside this window; distinct gestures fall outside it or are separated by
// the shell's merge cooldown.
const MergeWindow = 2000 * time.Millisecond

// Command is one reversible unit of work. Execute applies it, Undo restores
// the exact prior state.
type Command interface {
	Description() string
	Timestamp() time.Time
	Executed() bool
	Execute() error
	Undo() error
}

// Merger is the optional merge capability: folding a later compatible
// command into an earlier one so both undo as a single step. Merge must only
// be called after CanMerge reports true.
type Merger interface {
	CanMerge(other Command) bool
	Merge(other Command) error
}
