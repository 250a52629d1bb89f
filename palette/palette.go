// Package palette maps cell color indices to concrete colors. Palettes are
// immutable lookup data; cells only ever store indices into them.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"gridd/core"
)

// Color is one palette entry.
type Color struct {
	Name string
	Hex  string
}

// Palette is an ordered set of colors addressed by cell color indices.
type Palette struct {
	ID     string
	Name   string
	Colors []Color
}

// Default returns the palette new projects start with.
func Default() *Palette {
	p, _ := ByID("ansi16")
	return p
}

// ByID returns a built-in palette.
func ByID(id string) (*Palette, error) {
	for _, p := range builtins {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown palette %q", id)
}

// IDs lists the built-in palette identifiers.
func IDs() []string {
	out := make([]string, len(builtins))
	for i, p := range builtins {
		out[i] = p.ID
	}
	return out
}

// Size returns the number of colors in the palette.
func (p *Palette) Size() int {
	return len(p.Colors)
}

// Valid reports whether index addresses a palette color. The transparent
// sentinel is valid for backgrounds but names no color.
func (p *Palette) Valid(index int) bool {
	return index >= 0 && index < len(p.Colors)
}

// RGB returns the color at index. Out-of-range indices (including the
// transparent sentinel) report ok=false.
func (p *Palette) RGB(index int) (colorful.Color, bool) {
	if !p.Valid(index) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(p.Colors[index].Hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// RGB255 returns the color at index as 8-bit channels, for terminal
// truecolor output. Out-of-range indices fall back to the default
// foreground, or the palette's last color for palettes smaller than it.
func (p *Palette) RGB255(index int) (r, g, b uint8) {
	c, ok := p.RGB(index)
	if !ok {
		if c, ok = p.RGB(core.DefaultFg); !ok {
			c, _ = p.RGB(len(p.Colors) - 1)
		}
	}
	return c.RGB255()
}

// Nearest returns the palette index perceptually closest to the given
// color, using CIE-Lab distance.
func (p *Palette) Nearest(target colorful.Color) int {
	best := 0
	bestDist := -1.0
	for i := range p.Colors {
		c, ok := p.RGB(i)
		if !ok {
			continue
		}
		d := target.DistanceLab(c)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// ContrastFg picks the palette's darkest or lightest color, whichever reads
// better over the background index. Used for cursor and selection overlays.
func (p *Palette) ContrastFg(bg int) int {
	c, ok := p.RGB(bg)
	if !ok {
		return core.DefaultFg
	}
	_, _, l := c.Hcl()
	dark, light := p.extremes()
	if l > 0.5 {
		return dark
	}
	return light
}

func (p *Palette) extremes() (darkest, lightest int) {
	darkL, lightL := 2.0, -1.0
	for i := range p.Colors {
		c, ok := p.RGB(i)
		if !ok {
			continue
		}
		_, _, l := c.Hcl()
		if l < darkL {
			darkL = l
			darkest = i
		}
		if l > lightL {
			lightL = l
			lightest = i
		}
	}
	return darkest, lightest
}

// builtins holds the shipped palettes. The ansi16 entries follow the usual
// xterm defaults; index 7 matches core.DefaultFg.
var builtins = []*Palette{
	{
		ID:   "ansi16",
		Name: "ANSI 16",
		Colors: []Color{
			{"black", "#000000"},
			{"red", "#cd0000"},
			{"green", "#00cd00"},
			{"yellow", "#cdcd00"},
			{"blue", "#0000ee"},
			{"magenta", "#cd00cd"},
			{"cyan", "#00cdcd"},
			{"white", "#e5e5e5"},
			{"bright black", "#7f7f7f"},
			{"bright red", "#ff0000"},
			{"bright green", "#00ff00"},
			{"bright yellow", "#ffff00"},
			{"bright blue", "#5c5cff"},
			{"bright magenta", "#ff00ff"},
			{"bright cyan", "#00ffff"},
			{"bright white", "#ffffff"},
		},
	},
	{
		ID:   "gameboy",
		Name: "Game Boy",
		Colors: []Color{
			{"darkest", "#0f380f"},
			{"dark", "#306230"},
			{"light", "#8bac0f"},
			{"lightest", "#9bbc0f"},
		},
	},
	{
		ID:   "mono",
		Name: "Monochrome",
		Colors: []Color{
			{"black", "#000000"},
			{"white", "#ffffff"},
		},
	},
}
