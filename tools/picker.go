package tools

// Picker samples the pressed cell into the painter's settings. It never
// builds a command: picking is not undoable.
type Picker struct{}

// NewPicker creates a picker tool.
func NewPicker() *Picker { return &Picker{} }

// Name returns the tool tag.
func (p *Picker) Name() string { return "picker" }

// CursorHint returns the glyph shown at the hovered cell.
func (p *Picker) CursorHint() rune { return '?' }

// PointerDown samples the composited cell under the pointer, so the picked
// value is what the user sees, not what the active layer happens to hold.
func (p *Picker) PointerDown(ctx *Context, x, y int) error {
	cell, err := ctx.Scene.CompositeCell(x, y)
	if err != nil {
		return nil
	}
	ctx.Char = cell.Char
	ctx.Fg = cell.Fg
	ctx.Bg = cell.Bg
	return nil
}

// PointerDrag keeps sampling while dragging.
func (p *Picker) PointerDrag(ctx *Context, x, y int) error {
	return p.PointerDown(ctx, x, y)
}

// PointerUp does nothing.
func (p *Picker) PointerUp(ctx *Context, x, y int) error { return nil }
