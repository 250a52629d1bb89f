// Package scene holds the layered cell grid: Layer owns dense cell storage,
// Scene owns the ordered layer stack shared by every tool and command.
package scene

import (
	"errors"
	"fmt"

	"gridd/core"
)

// Layer errors.
var (
	ErrLayerLocked = errors.New("layer is locked")
)

// Layer is a fixed-size dense grid of cells plus its editing flags. Every
// coordinate in [0,width)x[0,height) always holds a valid cell. Undoable
// mutation must go through commands; SetCell exists for commands and
// project loading, not for UI code.
type Layer struct {
	id        int
	name      string
	visible   bool
	locked    bool
	ligatures bool

	width  int
	height int
	cells  []core.Cell
}

// NewLayer creates a layer filled with default cells.
func NewLayer(id int, name string, width, height int) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layer %q: %w: %dx%d", name, core.ErrInvalidSize, width, height)
	}
	cells := make([]core.Cell, width*height)
	for i := range cells {
		cells[i] = core.DefaultCell()
	}
	return &Layer{
		id:      id,
		name:    name,
		visible: true,
		width:   width,
		height:  height,
		cells:   cells,
	}, nil
}

// NewLayerWithCells creates a layer from existing cell contents, copying the
// slice. len(cells) must equal width*height.
func NewLayerWithCells(id int, name string, width, height int, cells []core.Cell) (*Layer, error) {
	l, err := NewLayer(id, name, width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("layer %q: %d cells for %dx%d grid", name, len(cells), width, height)
	}
	copy(l.cells, cells)
	return l, nil
}

// ID returns the layer's stable identifier.
func (l *Layer) ID() int { return l.id }

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// SetName renames the layer.
func (l *Layer) SetName(name string) { l.name = name }

// Visible reports whether the layer is painted when compositing.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible toggles the layer's visibility.
func (l *Layer) SetVisible(v bool) { l.visible = v }

// Locked reports whether the layer rejects mutation.
func (l *Layer) Locked() bool { return l.locked }

// SetLocked toggles the layer's lock.
func (l *Layer) SetLocked(v bool) { l.locked = v }

// Ligatures reports the render hint; it has no effect on core logic.
func (l *Layer) Ligatures() bool { return l.ligatures }

// SetLigatures sets the render hint.
func (l *Layer) SetLigatures(v bool) { l.ligatures = v }

// Size returns the layer dimensions.
func (l *Layer) Size() (width, height int) {
	return l.width, l.height
}

// Width returns the layer width in cells.
func (l *Layer) Width() int { return l.width }

// Height returns the layer height in cells.
func (l *Layer) Height() int { return l.height }

// Bounds returns the layer's cell area, anchored at the origin.
func (l *Layer) Bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: l.width, Y: l.height}}
}

// InBounds reports whether (x,y) addresses a cell in this layer.
func (l *Layer) InBounds(x, y int) bool {
	return l.Bounds().Contains(core.Point{X: x, Y: y})
}

// Index converts a coordinate to its dense cell index (y*width + x).
func (l *Layer) Index(x, y int) int {
	return y*l.width + x
}

// Coord converts a dense cell index back to its coordinate.
func (l *Layer) Coord(index int) (x, y int) {
	return index % l.width, index / l.width
}

// GetCell returns the cell at (x,y). Out-of-bounds coordinates are rejected,
// never wrapped or clamped.
func (l *Layer) GetCell(x, y int) (core.Cell, error) {
	if !l.InBounds(x, y) {
		return core.Cell{}, fmt.Errorf("get (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	return l.cells[l.Index(x, y)], nil
}

// SetCell writes the cell at (x,y). Fails on out-of-bounds coordinates and
// on locked layers.
func (l *Layer) SetCell(x, y int, c core.Cell) error {
	if !l.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	if l.locked {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrLayerLocked)
	}
	l.cells[l.Index(x, y)] = c
	return nil
}

// Fill overwrites every cell. Fails on locked layers.
func (l *Layer) Fill(c core.Cell) error {
	if l.locked {
		return ErrLayerLocked
	}
	for i := range l.cells {
		l.cells[i] = c
	}
	return nil
}

// Clear resets every cell to the default cell.
func (l *Layer) Clear() error {
	return l.Fill(core.DefaultCell())
}

// Cells returns a copy of the layer's cell contents in index order.
func (l *Layer) Cells() []core.Cell {
	out := make([]core.Cell, len(l.cells))
	copy(out, l.cells)
	return out
}

// Clone returns a deep copy of the layer with the given id.
func (l *Layer) Clone(id int) *Layer {
	c := *l
	c.id = id
	c.cells = make([]core.Cell, len(l.cells))
	copy(c.cells, l.cells)
	return &c
}

// resized returns a new layer of the given size whose contents are this
// layer's cells shifted by (dx,dy). Cells shifted outside the new bounds are
// cropped; uncovered positions pad with default cells. Flags carry over,
// including the lock: resizing replaces storage wholesale, it is not a cell
// mutation.
func (l *Layer) resized(width, height, dx, dy int) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layer %q: %w: %dx%d", l.name, core.ErrInvalidSize, width, height)
	}
	n := &Layer{
		id:        l.id,
		name:      l.name,
		visible:   l.visible,
		locked:    l.locked,
		ligatures: l.ligatures,
		width:     width,
		height:    height,
		cells:     make([]core.Cell, width*height),
	}
	for i := range n.cells {
		n.cells[i] = core.DefaultCell()
	}
	for y := 0; y < l.height; y++ {
		ny := y + dy
		if ny < 0 || ny >= height {
			continue
		}
		for x := 0; x < l.width; x++ {
			nx := x + dx
			if nx < 0 || nx >= width {
				continue
			}
			n.cells[ny*width+nx] = l.cells[y*l.width+x]
		}
	}
	return n, nil
}
