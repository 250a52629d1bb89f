package tools

import "fmt"

// Spray scatters paint over a disc around the pointer, one burst per
// pointer event. Drag bursts merge into a single undo step through the
// history's merge window.
type Spray struct{}

// NewSpray creates a spray tool.
func NewSpray() *Spray { return &Spray{} }

// Name returns the tool tag.
func (s *Spray) Name() string { return "spray" }

// CursorHint returns the glyph shown at the hovered cell.
func (s *Spray) CursorHint() rune { return '∘' }

// PointerDown sprays one burst.
func (s *Spray) PointerDown(ctx *Context, x, y int) error {
	return s.burst(ctx, x, y)
}

// PointerDrag sprays another burst.
func (s *Spray) PointerDrag(ctx *Context, x, y int) error {
	return s.burst(ctx, x, y)
}

// PointerUp ends the gesture.
func (s *Spray) PointerUp(ctx *Context, x, y int) error { return nil }

func (s *Spray) burst(ctx *Context, x, y int) error {
	layer, err := ctx.activeLayer()
	if err != nil {
		return err
	}
	radius := ctx.SprayRadius
	if radius <= 0 {
		radius = 2
	}
	density := ctx.SprayDensity
	if density <= 0 {
		density = 6
	}

	rng := ctx.rng()
	p := newPlan(layer)
	for i := 0; i < density; i++ {
		// Rejection-sample the disc so the spray stays round.
		dx := rng.Intn(2*radius+1) - radius
		dy := rng.Intn(2*radius+1) - radius
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		px, py := x+dx, y+dy
		if !layer.InBounds(px, py) {
			continue
		}
		existing, _ := p.GetCell(px, py)
		p.set(px, py, ctx.paintCell(existing))
	}
	return p.commit(ctx, fmt.Sprintf("Paint %s", cellsWord(len(p.changes()))), s.Name())
}
