// Package export renders composited scenes to text-based formats.
package export

import (
	"fmt"

	"gridd/palette"
	"gridd/scene"
)

// Format represents an export format.
type Format string

const (
	// FormatText exports plain Unicode text, dropping all color.
	FormatText Format = "text"
	// FormatANSI exports text with truecolor ANSI escape sequences.
	FormatANSI Format = "ansi"
)

// Exporter converts a scene to one target format.
type Exporter interface {
	// Export renders the scene's visible composite.
	Export(s *scene.Scene) (string, error)
	// FileExtension returns the recommended file extension for this format.
	FileExtension() string
	// FormatName returns a human-readable name for this format.
	FormatName() string
}

// NewExporter creates an exporter for the specified format. ANSI export
// resolves color indices through the given palette.
func NewExporter(format Format, pal *palette.Palette) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatANSI:
		return NewANSIExporter(pal), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt", "plain":
		return FormatText, nil
	case "ansi", "term":
		return FormatANSI, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// AvailableFormats returns all export formats.
func AvailableFormats() []Format {
	return []Format{FormatText, FormatANSI}
}
