package tools

import (
	"gridd/boxdraw"
	"gridd/core"
	"gridd/history"
	"gridd/scene"
)

// plan accumulates pending cell writes over a layer without touching it, so
// multi-cell shapes resolve junctions against their own partial result and
// the whole gesture commits as one atomic command. It satisfies
// boxdraw.CellReader: reads see pending writes first, then the layer.
type plan struct {
	layer   *scene.Layer
	pending map[int]core.Cell
	order   []int
}

func newPlan(layer *scene.Layer) *plan {
	return &plan{
		layer:   layer,
		pending: make(map[int]core.Cell),
	}
}

// GetCell reads through the overlay.
func (p *plan) GetCell(x, y int) (core.Cell, error) {
	if !p.layer.InBounds(x, y) {
		return core.Cell{}, core.ErrOutOfBounds
	}
	if c, ok := p.pending[p.layer.Index(x, y)]; ok {
		return c, nil
	}
	return p.layer.GetCell(x, y)
}

// set records a pending write. Out-of-bounds coordinates are skipped: shape
// tools clip at the grid edge rather than failing mid-gesture.
func (p *plan) set(x, y int, c core.Cell) {
	if !p.layer.InBounds(x, y) {
		return
	}
	idx := p.layer.Index(x, y)
	if _, ok := p.pending[idx]; !ok {
		p.order = append(p.order, idx)
	}
	p.pending[idx] = c
}

// place paints one cell with the context's settings. With smart lines
// active and a box-drawing glyph selected, the placed glyph is resolved
// from its neighbors and the cascade of neighbor rewrites joins the plan,
// keeping each rewritten neighbor's own colors.
func (p *plan) place(ctx *Context, x, y int) {
	if !p.layer.InBounds(x, y) {
		return
	}
	existing, _ := p.GetCell(x, y)
	cell := ctx.paintCell(existing)

	smart := ctx.SmartLines && ctx.paintsGlyph() && boxdraw.IsBoxDrawingChar(ctx.Char)
	if smart {
		w, h := p.layer.Size()
		cell.Char = boxdraw.GetSmartCharacter(boxdraw.NeighborGlyphs(p, x, y, w, h), ctx.LineStyle)
		p.set(x, y, cell)
		for _, u := range boxdraw.NeighborsToUpdate(p, x, y, w, h) {
			p.set(u.X, u.Y, core.Cell{Char: u.Char, Fg: u.Fg, Bg: u.Bg})
		}
		return
	}
	p.set(x, y, cell)
}

// changes converts the pending writes into command changes, dropping writes
// that leave a cell unchanged.
func (p *plan) changes() []history.Change {
	out := make([]history.Change, 0, len(p.order))
	for _, idx := range p.order {
		x, y := p.layer.Coord(idx)
		before, err := p.layer.GetCell(x, y)
		if err != nil {
			continue
		}
		after := p.pending[idx]
		if after == before {
			continue
		}
		out = append(out, history.Change{Index: idx, Before: before, After: after})
	}
	return out
}

// commit builds the command and hands it to the history. An empty plan is a
// silent no-op.
func (p *plan) commit(ctx *Context, description, tool string) error {
	changes := p.changes()
	if len(changes) == 0 {
		return nil
	}
	cmd, err := history.NewCellCommand(description, p.layer, changes, tool, ctx.Emitter)
	if err != nil {
		return err
	}
	return ctx.History.Execute(cmd)
}
