// Package event defines the closed set of notifications the editing core
// emits toward the rendering shell. Payloads are typed variants rather than
// name/string pairs so a subscriber cannot listen for a misspelled event.
package event

import "gridd/core"

// Kind discriminates event variants.
type Kind int

const (
	KindCellChanged Kind = iota
	KindExecuted
	KindUndone
	KindRedone
	KindMerged
	KindHistoryCleared
)

// String returns the event name as the shell logs it.
func (k Kind) String() string {
	switch k {
	case KindCellChanged:
		return "cell:changed"
	case KindExecuted:
		return "history:executed"
	case KindUndone:
		return "history:undone"
	case KindRedone:
		return "history:redone"
	case KindMerged:
		return "history:merged"
	case KindHistoryCleared:
		return "history:cleared"
	default:
		return "unknown"
	}
}

// Event is one notification from the core. The concrete type carries the
// payload; Kind allows cheap dispatch without a type switch.
type Event interface {
	Kind() Kind
}

// CellChanged reports a single cell write, carrying the new cell snapshot
// so the shell can do a localized redraw.
type CellChanged struct {
	X, Y    int
	LayerID int
	Cell    core.Cell
}

func (CellChanged) Kind() Kind { return KindCellChanged }

// Executed reports a command applied and pushed onto the undo stack.
type Executed struct {
	Description string
}

func (Executed) Kind() Kind { return KindExecuted }

// Undone reports a command reverted.
type Undone struct {
	Description string
}

func (Undone) Kind() Kind { return KindUndone }

// Redone reports a command re-applied.
type Redone struct {
	Description string
}

func (Redone) Kind() Kind { return KindRedone }

// Merged reports a command folded into the top of the undo stack. Cells is
// the merged command's total touched-cell count.
type Merged struct {
	Description string
	Cells       int
}

func (Merged) Kind() Kind { return KindMerged }

// HistoryCleared reports both stacks emptied, e.g. on project replacement.
type HistoryCleared struct{}

func (HistoryCleared) Kind() Kind { return KindHistoryCleared }

// Emitter receives events fire-and-forget: no return value, delivery in
// emission order.
type Emitter interface {
	Emit(Event)
}

// EmitterFunc adapts a function to the Emitter interface. A nil function is
// a valid no-op emitter.
type EmitterFunc func(Event)

// Emit calls f with the event.
func (f EmitterFunc) Emit(e Event) {
	if f != nil {
		f(e)
	}
}

// Discard drops every event. Useful for headless use and tests.
var Discard Emitter = EmitterFunc(nil)

// Recorder collects events in order, for tests and batched redraws.
type Recorder struct {
	Events []Event
}

// Emit appends the event.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// OfKind returns the recorded events of one kind, in emission order.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
