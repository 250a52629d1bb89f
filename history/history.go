package history

import (
	"errors"

	"gridd/event"
)

// DefaultMaxSize bounds the undo stack when no explicit cap is given.
const DefaultMaxSize = 100

// History owns the undo and redo stacks and the merge policy. It is
// session-scoped state constructed once and handed by reference to every
// tool and shell component; replacing the project means Clear plus
// re-binding, never a second hidden instance.
type History struct {
	undoStack []Command
	redoStack []Command
	maxSize   int
	merging   bool
	emitter   event.Emitter
}

// NewHistory creates a history bounded to maxSize retained commands
// (DefaultMaxSize if maxSize <= 0), with merging enabled.
func NewHistory(maxSize int, emitter event.Emitter) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if emitter == nil {
		emitter = event.Discard
	}
	return &History{
		maxSize: maxSize,
		merging: true,
		emitter: emitter,
	}
}

// Execute applies a command and records it for undo. If merging is enabled
// and the top of the undo stack accepts the command, only the command's
// incremental effect is applied and it folds into the top instead of
// becoming a new undo step. Executing always discards the redo stack.
func (h *History) Execute(cmd Command) error {
	if cmd == nil {
		return errors.New("history: nil command")
	}

	if h.merging && len(h.undoStack) > 0 {
		top := h.undoStack[len(h.undoStack)-1]
		if m, ok := top.(Merger); ok && m.CanMerge(cmd) {
			// The already-applied portion stays applied; only the new
			// command's changes touch the grid.
			if err := cmd.Execute(); err != nil {
				return err
			}
			if err := m.Merge(cmd); err != nil {
				return err
			}
			h.redoStack = h.redoStack[:0]
			merged := event.Merged{Description: top.Description()}
			if cc, ok := top.(*CellCommand); ok {
				merged.Cells = cc.CellCount()
			}
			h.emitter.Emit(merged)
			return nil
		}
	}

	if err := cmd.Execute(); err != nil {
		return err
	}
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxSize {
		// Oldest commands drop silently; no undo is possible past the cap.
		n := copy(h.undoStack, h.undoStack[len(h.undoStack)-h.maxSize:])
		for i := n; i < len(h.undoStack); i++ {
			h.undoStack[i] = nil
		}
		h.undoStack = h.undoStack[:n]
	}
	h.redoStack = h.redoStack[:0]
	h.emitter.Emit(event.Executed{Description: cmd.Description()})
	return nil
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Undo reverts the most recent command and moves it to the redo stack.
// With an empty undo stack it is a defined no-op, not an error.
func (h *History) Undo() error {
	if len(h.undoStack) == 0 {
		return nil
	}
	top := h.undoStack[len(h.undoStack)-1]
	if err := top.Undo(); err != nil {
		return err
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)
	h.emitter.Emit(event.Undone{Description: top.Description()})
	return nil
}

// Redo re-applies the most recently undone command. With an empty redo
// stack it is a defined no-op.
func (h *History) Redo() error {
	if len(h.redoStack) == 0 {
		return nil
	}
	top := h.redoStack[len(h.redoStack)-1]
	if err := top.Execute(); err != nil {
		return err
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, top)
	h.emitter.Emit(event.Redone{Description: top.Description()})
	return nil
}

// SetMergingEnabled toggles stroke merging. Shells disable it briefly at
// gesture boundaries so a new stroke never folds into the previous one; it
// is a cooldown, not a mode.
func (h *History) SetMergingEnabled(enabled bool) {
	h.merging = enabled
}

// MergingEnabled reports the current merge toggle.
func (h *History) MergingEnabled() bool { return h.merging }

// Clear empties both stacks. Used when a new project replaces the scene;
// history cannot meaningfully apply across unrelated grids.
func (h *History) Clear() {
	for i := range h.undoStack {
		h.undoStack[i] = nil
	}
	for i := range h.redoStack {
		h.redoStack[i] = nil
	}
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
	h.emitter.Emit(event.HistoryCleared{})
}

// Sizes returns the current undo and redo stack depths.
func (h *History) Sizes() (undo, redo int) {
	return len(h.undoStack), len(h.redoStack)
}

// PeekUndo returns the command the next Undo would revert, or nil.
func (h *History) PeekUndo() Command {
	if len(h.undoStack) == 0 {
		return nil
	}
	return h.undoStack[len(h.undoStack)-1]
}

// PeekRedo returns the command the next Redo would re-apply, or nil.
func (h *History) PeekRedo() Command {
	if len(h.redoStack) == 0 {
		return nil
	}
	return h.redoStack[len(h.redoStack)-1]
}
