package tools

import (
	"fmt"

	"gridd/core"
)

// Line rubber-bands a straight line from the anchor set on pointer down and
// commits it as one command on pointer up.
type Line struct {
	active           bool
	anchorX, anchorY int
	curX, curY       int
}

// NewLine creates a line tool.
func NewLine() *Line { return &Line{} }

// Name returns the tool tag.
func (l *Line) Name() string { return "line" }

// CursorHint returns the glyph shown at the hovered cell.
func (l *Line) CursorHint() rune { return '+' }

// PointerDown anchors the line.
func (l *Line) PointerDown(ctx *Context, x, y int) error {
	l.active = true
	l.anchorX, l.anchorY = x, y
	l.curX, l.curY = x, y
	return nil
}

// PointerDrag moves the free end. Nothing is committed yet; the shell draws
// the preview from Preview.
func (l *Line) PointerDrag(ctx *Context, x, y int) error {
	if !l.active {
		return nil
	}
	l.curX, l.curY = x, y
	return nil
}

// PointerUp commits the line as a single command.
func (l *Line) PointerUp(ctx *Context, x, y int) error {
	if !l.active {
		return nil
	}
	l.active = false
	l.curX, l.curY = x, y

	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	points := LinePoints(l.anchorX, l.anchorY, l.curX, l.curY)
	p := newPlan(layer)
	for _, pt := range points {
		p.place(ctx, pt.X, pt.Y)
	}
	return p.commit(ctx, fmt.Sprintf("Paint %s", cellsWord(len(points))), l.Name())
}

// Preview returns the cells the committed line would cover.
func (l *Line) Preview() []core.Point {
	if !l.active {
		return nil
	}
	return LinePoints(l.anchorX, l.anchorY, l.curX, l.curY)
}
