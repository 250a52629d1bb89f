package export

import (
	"fmt"
	"strings"

	"gridd/core"
	"gridd/palette"
	"gridd/scene"
)

// ANSIExporter renders the scene's visible composite with truecolor ANSI
// escape sequences, resolving color indices through a palette. Transparent
// backgrounds emit no background code, so the terminal's own background
// shows through.
type ANSIExporter struct {
	palette *palette.Palette
}

// NewANSIExporter creates an ANSI exporter over the given palette. A nil
// palette falls back to the default.
func NewANSIExporter(pal *palette.Palette) *ANSIExporter {
	if pal == nil {
		pal = palette.Default()
	}
	return &ANSIExporter{palette: pal}
}

// Export renders the composite grid, emitting color codes only when the
// attributes change along a row. Every row ends with a reset.
func (e *ANSIExporter) Export(s *scene.Scene) (string, error) {
	w, h := s.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		curFg, curBg := -2, -2
		for x := 0; x < w; x++ {
			c, err := s.CompositeCell(x, y)
			if err != nil {
				return "", err
			}
			if c.Fg != curFg {
				r, g, b := e.palette.RGB255(c.Fg)
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", r, g, b)
				curFg = c.Fg
			}
			if c.Bg != curBg {
				if c.Bg == core.Transparent {
					sb.WriteString("\x1b[49m")
				} else {
					r, g, b := e.palette.RGB255(c.Bg)
					fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", r, g, b)
				}
				curBg = c.Bg
			}
			sb.WriteRune(c.Char)
		}
		sb.WriteString("\x1b[0m\n")
	}
	return sb.String(), nil
}

// FileExtension returns ".ans".
func (e *ANSIExporter) FileExtension() string {
	return ".ans"
}

// FormatName returns the display name.
func (e *ANSIExporter) FormatName() string {
	return "ANSI truecolor"
}
