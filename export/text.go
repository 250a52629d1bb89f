package export

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"gridd/scene"
)

// TextExporter renders the scene's visible composite as plain text. Color
// indices are dropped; glyphs survive as-is. Trailing blanks on each row
// and trailing empty rows are trimmed.
type TextExporter struct{}

// NewTextExporter creates a plain text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export renders the composite grid row by row.
func (e *TextExporter) Export(s *scene.Scene) (string, error) {
	w, h := s.Size()
	lines := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		skip := 0
		for x := 0; x < w; x++ {
			if skip > 0 {
				skip--
				continue
			}
			c, err := s.CompositeCell(x, y)
			if err != nil {
				return "", err
			}
			sb.WriteRune(c.Char)
			// Wide glyphs cover the next column; dropping it keeps every
			// row at the grid's visual width.
			if cw := runewidth.RuneWidth(c.Char); cw > 1 {
				skip = cw - 1
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// FileExtension returns ".txt".
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// FormatName returns the display name.
func (e *TextExporter) FormatName() string {
	return "Plain text"
}
