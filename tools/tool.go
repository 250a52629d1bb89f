// Package tools translates pointer gestures into cell commands. Every tool
// is a variant behind one capability interface; none of them writes a layer
// directly — all undoable mutation flows through the command history.
package tools

import (
	"fmt"
	"math/rand"
	"time"

	"gridd/boxdraw"
	"gridd/core"
	"gridd/event"
	"gridd/history"
	"gridd/scene"
)

// PaintMode selects which cell fields a stroke writes.
type PaintMode int

const (
	// PaintAll writes glyph and colors.
	PaintAll PaintMode = iota
	// PaintChar writes the glyph only, keeping the cell's colors.
	PaintChar
	// PaintColor writes colors only, keeping the cell's glyph.
	PaintColor
)

// Context carries the shared editing state a tool needs for one gesture:
// the scene, the injected command history, and the painter's current
// settings. The shell owns it and mutates the settings between gestures.
type Context struct {
	Scene   *scene.Scene
	History *history.History
	Emitter event.Emitter

	Char rune
	Fg   int
	Bg   int
	Mode PaintMode

	LineStyle  boxdraw.Style
	SmartLines bool

	SprayRadius  int
	SprayDensity int
	Rand         *rand.Rand
}

// Tool is one drawing behavior over the shared pointer-event contract.
// Coordinates are grid cells, already hit-tested by the shell.
type Tool interface {
	Name() string
	CursorHint() rune
	PointerDown(ctx *Context, x, y int) error
	PointerDrag(ctx *Context, x, y int) error
	PointerUp(ctx *Context, x, y int) error
}

// Standard returns the full tool set in palette order.
func Standard() []Tool {
	return []Tool{
		NewBrush(),
		NewEraser(),
		NewLine(),
		NewRectangle(),
		NewCircle(),
		NewFloodFill(),
		NewSpray(),
		NewPicker(),
	}
}

// activeLayer returns the gesture's target layer, rejecting locked layers
// before any command is built.
func (c *Context) activeLayer() (*scene.Layer, error) {
	l := c.Scene.ActiveLayer()
	if l == nil {
		return nil, fmt.Errorf("no active layer")
	}
	if l.Locked() {
		return nil, fmt.Errorf("layer %q: %w", l.Name(), scene.ErrLayerLocked)
	}
	return l, nil
}

// paintCell applies the paint mode to an existing cell.
func (c *Context) paintCell(existing core.Cell) core.Cell {
	switch c.Mode {
	case PaintChar:
		existing.Char = c.Char
		return existing
	case PaintColor:
		existing.Fg = c.Fg
		existing.Bg = c.Bg
		return existing
	default:
		return core.Cell{Char: c.Char, Fg: c.Fg, Bg: c.Bg}
	}
}

// paintsGlyph reports whether the current mode writes the glyph field.
func (c *Context) paintsGlyph() bool {
	return c.Mode != PaintColor
}

// rng returns the context's random source, seeding one lazily for callers
// that don't care about determinism.
func (c *Context) rng() *rand.Rand {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.Rand
}

// cellsWord pluralizes command descriptions ("1 cell", "3 cells").
func cellsWord(n int) string {
	if n == 1 {
		return fmt.Sprintf("%d cell", n)
	}
	return fmt.Sprintf("%d cells", n)
}
