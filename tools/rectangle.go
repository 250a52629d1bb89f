package tools

import (
	"fmt"

	"gridd/core"
)

// Rectangle rubber-bands an axis-aligned outline between the anchor and the
// pointer, committed on pointer up.
type Rectangle struct {
	active           bool
	anchorX, anchorY int
	curX, curY       int
}

// NewRectangle creates a rectangle tool.
func NewRectangle() *Rectangle { return &Rectangle{} }

// Name returns the tool tag.
func (r *Rectangle) Name() string { return "rectangle" }

// CursorHint returns the glyph shown at the hovered cell.
func (r *Rectangle) CursorHint() rune { return '+' }

// PointerDown anchors one corner.
func (r *Rectangle) PointerDown(ctx *Context, x, y int) error {
	r.active = true
	r.anchorX, r.anchorY = x, y
	r.curX, r.curY = x, y
	return nil
}

// PointerDrag moves the opposite corner.
func (r *Rectangle) PointerDrag(ctx *Context, x, y int) error {
	if !r.active {
		return nil
	}
	r.curX, r.curY = x, y
	return nil
}

// PointerUp commits the outline as a single command.
func (r *Rectangle) PointerUp(ctx *Context, x, y int) error {
	if !r.active {
		return nil
	}
	r.active = false
	r.curX, r.curY = x, y

	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	points := RectPoints(r.anchorX, r.anchorY, r.curX, r.curY)
	p := newPlan(layer)
	for _, pt := range points {
		p.place(ctx, pt.X, pt.Y)
	}
	return p.commit(ctx, fmt.Sprintf("Paint %s", cellsWord(len(points))), r.Name())
}

// Preview returns the cells the committed outline would cover.
func (r *Rectangle) Preview() []core.Point {
	if !r.active {
		return nil
	}
	return RectPoints(r.anchorX, r.anchorY, r.curX, r.curY)
}
