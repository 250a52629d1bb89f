package tools

import (
	"fmt"

	"gridd/core"
)

// Eraser restores cells to the default blank cell, with the same drag
// interpolation as the brush.
type Eraser struct {
	active bool
	lastX  int
	lastY  int
}

// NewEraser creates an eraser tool.
func NewEraser() *Eraser { return &Eraser{} }

// Name returns the tool tag.
func (e *Eraser) Name() string { return "eraser" }

// CursorHint returns the glyph shown at the hovered cell.
func (e *Eraser) CursorHint() rune { return '░' }

// PointerDown erases the first cell of the stroke.
func (e *Eraser) PointerDown(ctx *Context, x, y int) error {
	e.active = true
	e.lastX, e.lastY = x, y
	return e.erase(ctx, []core.Point{{X: x, Y: y}})
}

// PointerDrag erases the segment from the previous sample to this one.
func (e *Eraser) PointerDrag(ctx *Context, x, y int) error {
	if !e.active {
		return e.PointerDown(ctx, x, y)
	}
	points := LinePoints(e.lastX, e.lastY, x, y)
	e.lastX, e.lastY = x, y
	return e.erase(ctx, points)
}

// PointerUp ends the stroke.
func (e *Eraser) PointerUp(ctx *Context, x, y int) error {
	e.active = false
	return nil
}

func (e *Eraser) erase(ctx *Context, points []core.Point) error {
	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	p := newPlan(layer)
	for _, pt := range points {
		if !layer.InBounds(pt.X, pt.Y) {
			continue
		}
		p.set(pt.X, pt.Y, core.DefaultCell())
	}
	return p.commit(ctx, fmt.Sprintf("Erase %s", cellsWord(len(points))), e.Name())
}
