package tools

import (
	"fmt"

	"gridd/core"
)

// Brush paints single cells, interpolating between drag samples so fast
// strokes stay gapless. Each pointer event commits its own command; the
// history's merge window folds a whole drag into one undo step.
type Brush struct {
	active bool
	lastX  int
	lastY  int
}

// NewBrush creates a brush tool.
func NewBrush() *Brush { return &Brush{} }

// Name returns the tool tag.
func (b *Brush) Name() string { return "brush" }

// CursorHint returns the glyph shown at the hovered cell.
func (b *Brush) CursorHint() rune { return '+' }

// PointerDown paints the first cell of the stroke.
func (b *Brush) PointerDown(ctx *Context, x, y int) error {
	b.active = true
	b.lastX, b.lastY = x, y
	return b.paint(ctx, []core.Point{{X: x, Y: y}})
}

// PointerDrag paints the segment from the previous sample to this one.
func (b *Brush) PointerDrag(ctx *Context, x, y int) error {
	if !b.active {
		return b.PointerDown(ctx, x, y)
	}
	points := LinePoints(b.lastX, b.lastY, x, y)
	b.lastX, b.lastY = x, y
	return b.paint(ctx, points)
}

// PointerUp ends the stroke.
func (b *Brush) PointerUp(ctx *Context, x, y int) error {
	b.active = false
	return nil
}

func (b *Brush) paint(ctx *Context, points []core.Point) error {
	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	p := newPlan(layer)
	for _, pt := range points {
		p.place(ctx, pt.X, pt.Y)
	}
	return p.commit(ctx, fmt.Sprintf("Paint %s", cellsWord(len(points))), b.Name())
}
