package tools

import (
	"fmt"

	"gridd/core"
)

// FloodFill repaints the 4-connected region of cells equal to the start
// cell. A start cell already matching the paint result is a silent no-op.
type FloodFill struct{}

// NewFloodFill creates a flood-fill tool.
func NewFloodFill() *FloodFill { return &FloodFill{} }

// Name returns the tool tag.
func (f *FloodFill) Name() string { return "fill" }

// CursorHint returns the glyph shown at the hovered cell.
func (f *FloodFill) CursorHint() rune { return '▒' }

// PointerDown fills from the pressed cell.
func (f *FloodFill) PointerDown(ctx *Context, x, y int) error {
	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	if !layer.InBounds(x, y) {
		return nil
	}
	target, err := layer.GetCell(x, y)
	if err != nil {
		return err
	}
	replacement := ctx.paintCell(target)
	if replacement == target {
		return nil
	}

	p := newPlan(layer)
	filled := 0
	queue := []core.Point{{X: x, Y: y}}
	visited := map[core.Point]bool{{X: x, Y: y}: true}
	for len(queue) > 0 {
		pt := queue[0]
		queue = queue[1:]
		cell, err := layer.GetCell(pt.X, pt.Y)
		if err != nil || cell != target {
			continue
		}
		p.set(pt.X, pt.Y, ctx.paintCell(cell))
		filled++
		for _, d := range []core.Direction{core.North, core.South, core.East, core.West} {
			off := d.Offset()
			next := core.Point{X: pt.X + off.X, Y: pt.Y + off.Y}
			if layer.InBounds(next.X, next.Y) && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return p.commit(ctx, fmt.Sprintf("Fill %s", cellsWord(filled)), f.Name())
}

// PointerDrag does nothing; the fill happens on the press.
func (f *FloodFill) PointerDrag(ctx *Context, x, y int) error { return nil }

// PointerUp does nothing.
func (f *FloodFill) PointerUp(ctx *Context, x, y int) error { return nil }
