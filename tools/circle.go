package tools

import (
	"fmt"

	"gridd/core"
)

// Circle rubber-bands a midpoint circle around the anchor with the radius
// following the pointer, committed on pointer up. Box-drawing junction
// resolution is skipped: circles have no straight-line topology.
type Circle struct {
	active           bool
	anchorX, anchorY int
	curX, curY       int
}

// NewCircle creates a circle tool.
func NewCircle() *Circle { return &Circle{} }

// Name returns the tool tag.
func (c *Circle) Name() string { return "circle" }

// CursorHint returns the glyph shown at the hovered cell.
func (c *Circle) CursorHint() rune { return '+' }

// PointerDown anchors the center.
func (c *Circle) PointerDown(ctx *Context, x, y int) error {
	c.active = true
	c.anchorX, c.anchorY = x, y
	c.curX, c.curY = x, y
	return nil
}

// PointerDrag adjusts the radius.
func (c *Circle) PointerDrag(ctx *Context, x, y int) error {
	if !c.active {
		return nil
	}
	c.curX, c.curY = x, y
	return nil
}

// PointerUp commits the circle as a single command.
func (c *Circle) PointerUp(ctx *Context, x, y int) error {
	if !c.active {
		return nil
	}
	c.active = false
	c.curX, c.curY = x, y

	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	points := CirclePoints(c.anchorX, c.anchorY, c.radius())
	p := newPlan(layer)
	painted := 0
	for _, pt := range points {
		if !layer.InBounds(pt.X, pt.Y) {
			continue
		}
		existing, _ := p.GetCell(pt.X, pt.Y)
		p.set(pt.X, pt.Y, ctx.paintCell(existing))
		painted++
	}
	return p.commit(ctx, fmt.Sprintf("Paint %s", cellsWord(painted)), c.Name())
}

// Preview returns the cells the committed circle would cover.
func (c *Circle) Preview() []core.Point {
	if !c.active {
		return nil
	}
	return CirclePoints(c.anchorX, c.anchorY, c.radius())
}

func (c *Circle) radius() int {
	return max(abs(c.curX-c.anchorX), abs(c.curY-c.anchorY))
}
