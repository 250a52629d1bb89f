package history

import (
	"errors"
	"fmt"
	"time"

	"gridd/core"
	"gridd/event"
	"gridd/scene"
)

// Change is one cell edit: the dense index (y*width + x) plus the complete
// cell values before and after. Partial cells are never recorded; undo must
// restore the exact prior state.
type Change struct {
	Index  int
	Before core.Cell
	After  core.Cell
}

// CellCommand applies a batch of cell changes to one layer. The layer is
// held by reference; it is owned by the scene and outlives the command.
// The tool tag participates only in merge eligibility, never in semantics.
type CellCommand struct {
	layer       *scene.Layer
	changes     []Change
	byIndex     map[int]int // index -> position in changes
	description string
	tool        string
	timestamp   time.Time
	executed    bool
	emitter     event.Emitter
}

// NewCellCommand validates and builds a cell command. The description must
// be non-empty, the layer non-nil, and every change must address a cell
// inside the layer. A nil emitter disables notifications.
func NewCellCommand(description string, layer *scene.Layer, changes []Change, tool string, emitter event.Emitter) (*CellCommand, error) {
	if description == "" {
		return nil, errors.New("cell command: empty description")
	}
	if layer == nil {
		return nil, errors.New("cell command: nil layer")
	}
	if len(changes) == 0 {
		return nil, errors.New("cell command: no changes")
	}
	w, h := layer.Size()
	byIndex := make(map[int]int, len(changes))
	for i, ch := range changes {
		if ch.Index < 0 || ch.Index >= w*h {
			return nil, fmt.Errorf("cell command: change %d: index %d outside %dx%d grid", i, ch.Index, w, h)
		}
		if _, dup := byIndex[ch.Index]; dup {
			return nil, fmt.Errorf("cell command: duplicate change for index %d", ch.Index)
		}
		byIndex[ch.Index] = i
	}
	if emitter == nil {
		emitter = event.Discard
	}
	return &CellCommand{
		layer:       layer,
		changes:     append([]Change(nil), changes...),
		byIndex:     byIndex,
		description: description,
		tool:        tool,
		timestamp:   time.Now(),
		emitter:     emitter,
	}, nil
}

// Description returns the human-readable summary.
func (c *CellCommand) Description() string { return c.description }

// Timestamp returns the command's creation (or last merge) time.
func (c *CellCommand) Timestamp() time.Time { return c.timestamp }

// Executed reports whether the command's effect is currently applied.
func (c *CellCommand) Executed() bool { return c.executed }

// Tool returns the originating tool tag.
func (c *CellCommand) Tool() string { return c.tool }

// Layer returns the target layer.
func (c *CellCommand) Layer() *scene.Layer { return c.layer }

// Changes returns a copy of the recorded changes in application order.
func (c *CellCommand) Changes() []Change {
	return append([]Change(nil), c.changes...)
}

// CellCount returns the number of distinct cells the command touches.
func (c *CellCommand) CellCount() int { return len(c.changes) }

// Execute writes every change's after-cell into the layer and emits one
// CellChanged per touched cell.
func (c *CellCommand) Execute() error {
	if err := c.apply(func(ch Change) core.Cell { return ch.After }); err != nil {
		return err
	}
	c.executed = true
	return nil
}

// Undo writes every change's before-cell back and emits matching
// notifications.
func (c *CellCommand) Undo() error {
	if err := c.apply(func(ch Change) core.Cell { return ch.Before }); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *CellCommand) apply(pick func(Change) core.Cell) error {
	for _, ch := range c.changes {
		x, y := c.layer.Coord(ch.Index)
		cell := pick(ch)
		if err := c.layer.SetCell(x, y, cell); err != nil {
			return fmt.Errorf("%s: %w", c.description, err)
		}
		c.emitter.Emit(event.CellChanged{X: x, Y: y, LayerID: c.layer.ID(), Cell: cell})
	}
	return nil
}

// CanMerge reports whether other can fold into this command: another cell
// command on the identical layer with the same tool tag, created no later
// than the merge window after this one, with no conflicting cell overlap.
// An overlapping index conflicts only when this command's after-value
// disagrees with the other's before-value there, meaning some other actor
// wrote the cell in between.
func (c *CellCommand) CanMerge(other Command) bool {
	oc, ok := other.(*CellCommand)
	if !ok {
		return false
	}
	if oc.layer != c.layer || oc.tool != c.tool {
		return false
	}
	delta := oc.timestamp.Sub(c.timestamp)
	if delta < 0 || delta > MergeWindow {
		return false
	}
	for _, ch := range oc.changes {
		if pos, overlap := c.byIndex[ch.Index]; overlap {
			if c.changes[pos].After != ch.Before {
				return false
			}
		}
	}
	return true
}

// Merge folds other's changes into this command: overlapping indices keep
// this command's before-cell (undo reverts to the pre-stroke state) and take
// the other's after-cell; new indices are appended. The description becomes
// a cell-count summary and the timestamp advances to the later command's.
func (c *CellCommand) Merge(other Command) error {
	if !c.CanMerge(other) {
		return fmt.Errorf("merge %q into %q: %w", other.Description(), c.description, ErrCannotMerge)
	}
	oc := other.(*CellCommand)
	for _, ch := range oc.changes {
		if pos, overlap := c.byIndex[ch.Index]; overlap {
			c.changes[pos].After = ch.After
			continue
		}
		c.byIndex[ch.Index] = len(c.changes)
		c.changes = append(c.changes, ch)
	}
	if oc.timestamp.After(c.timestamp) {
		c.timestamp = oc.timestamp
	}
	c.description = mergedDescription(c.tool, len(c.changes))
	return nil
}

// mergedDescription summarizes a merged stroke by tool tag and cell count.
func mergedDescription(tool string, cells int) string {
	switch tool {
	case "brush", "line", "rectangle", "circle", "fill", "spray":
		return fmt.Sprintf("Paint %d cells", cells)
	case "eraser":
		return fmt.Sprintf("Erase %d cells", cells)
	default:
		return fmt.Sprintf("Modify %d cells", cells)
	}
}
