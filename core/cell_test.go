package core

import (
	"encoding/json"
	"testing"
)

// TestDefaultCell checks the documented defaults: space glyph, foreground 7,
// transparent background.
func TestDefaultCell(t *testing.T) {
	c := DefaultCell()
	if c.Char != ' ' {
		t.Errorf("Char = %q, want space", c.Char)
	}
	if c.Fg != DefaultFg {
		t.Errorf("Fg = %d, want %d", c.Fg, DefaultFg)
	}
	if c.Bg != Transparent {
		t.Errorf("Bg = %d, want %d", c.Bg, Transparent)
	}
	if !c.IsBlank() {
		t.Error("IsBlank() = false for default cell")
	}
}

// TestCellEquality verifies cells compare by field equality.
func TestCellEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"Identical", Cell{'x', 1, 2}, Cell{'x', 1, 2}, true},
		{"Different char", Cell{'x', 1, 2}, Cell{'y', 1, 2}, false},
		{"Different fg", Cell{'x', 1, 2}, Cell{'x', 3, 2}, false},
		{"Different bg", Cell{'x', 1, 2}, Cell{'x', 1, 3}, false},
		{"Both default", DefaultCell(), DefaultCell(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("(%v == %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestCellJSONRoundTrip checks a cell survives marshal/unmarshal unchanged,
// including box-drawing glyphs and the transparent sentinel.
func TestCellJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
	}{
		{"Default", DefaultCell()},
		{"BoxDrawing", Cell{'╬', 3, 0}},
		{"Transparent", Cell{'#', 15, Transparent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cell)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var got Cell
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.cell {
				t.Errorf("round trip = %v, want %v", got, tt.cell)
			}
		})
	}
}

// TestCellUnmarshalRejectsBadGlyph checks multi-rune and empty glyphs fail.
func TestCellUnmarshalRejectsBadGlyph(t *testing.T) {
	for _, raw := range []string{`{"ch":"","fg":7,"bg":-1}`, `{"ch":"ab","fg":7,"bg":-1}`} {
		var c Cell
		if err := json.Unmarshal([]byte(raw), &c); err == nil {
			t.Errorf("Unmarshal(%s) error = nil, want error", raw)
		}
	}
}
