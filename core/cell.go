package core

import (
	"encoding/json"
	"fmt"
)

// Transparent is the sentinel background index meaning "no background":
// layers underneath show through when compositing.
const Transparent = -1

// DefaultFg is the palette index new cells are created with.
const DefaultFg = 7

// Cell is a single character cell: one glyph plus foreground and background
// palette indices. Cells are value types and compare by field equality.
type Cell struct {
	Char rune
	Fg   int
	Bg   int
}

// DefaultCell returns the blank cell every layer position starts with:
// a space on a transparent background with the default foreground.
func DefaultCell() Cell {
	return Cell{Char: ' ', Fg: DefaultFg, Bg: Transparent}
}

// IsBlank reports whether the cell is indistinguishable from an untouched
// default cell.
func (c Cell) IsBlank() bool {
	return c == DefaultCell()
}

// cellDoc is the persisted shape of a cell. The glyph is stored as a string
// so project files stay human-readable.
type cellDoc struct {
	Char string `json:"ch"`
	Fg   int    `json:"fg"`
	Bg   int    `json:"bg"`
}

// MarshalJSON encodes the cell with its glyph as a one-rune string.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellDoc{Char: string(c.Char), Fg: c.Fg, Bg: c.Bg})
}

// UnmarshalJSON decodes a cell, rejecting glyphs that are not exactly one rune.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var doc cellDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	runes := []rune(doc.Char)
	if len(runes) != 1 {
		return fmt.Errorf("cell glyph must be exactly one rune, got %q", doc.Char)
	}
	c.Char = runes[0]
	c.Fg = doc.Fg
	c.Bg = doc.Bg
	return nil
}
