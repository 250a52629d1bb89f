package boxdraw

import "gridd/core"

// neighborClass is the 2-bit classification of one neighbor slot.
type neighborClass uint8

const (
	classAbsent neighborClass = iota
	classSingle
	classDouble
)

// Neighbors holds the glyphs in the four cardinal neighbor cells of a
// position. Zero means no neighbor (empty cell or edge of grid).
type Neighbors struct {
	North, South, East, West rune
}

// resolveTable maps an 8-bit neighbor code (2 bits per direction, packed
// N S E W from high to low) to the resolved glyph, one table per mode.
// Built once at init and read-only afterwards, so it is safe to share.
var resolveTable [2][256]rune

func init() {
	classes := []neighborClass{classAbsent, classSingle, classDouble}
	for _, n := range classes {
		for _, s := range classes {
			for _, e := range classes {
				for _, w := range classes {
					code := packCode(n, s, e, w)
					resolveTable[Single][code] = computeGlyph(n, s, e, w, Single)
					resolveTable[Double][code] = computeGlyph(n, s, e, w, Double)
				}
			}
		}
	}
}

func packCode(n, s, e, w neighborClass) int {
	return int(n)<<6 | int(s)<<4 | int(e)<<2 | int(w)
}

// computeGlyph derives the glyph for one neighbor-class combination.
// Connectivity decides the role (cross, tee, corner, segment); mode decides
// the family — unless the vertical and horizontal axes disagree in style,
// which forces the mixed-glyph path.
func computeGlyph(n, s, e, w neighborClass, mode Style) rune {
	hasN := n != classAbsent
	hasS := s != classAbsent
	hasE := e != classAbsent
	hasW := w != classAbsent

	vStyle, vPure := axisStyle(n, s)
	hStyle, hPure := axisStyle(e, w)
	if vPure && hPure && vStyle != hStyle {
		if r := mixedGlyph(vStyle, hasN, hasS, hasE, hasW); r != 0 {
			return r
		}
		// Mixed corners fall outside the 10-glyph junction set; the painter's
		// mode decides the family instead.
	}

	f := familyFor(mode)
	count := 0
	for _, has := range []bool{hasN, hasS, hasE, hasW} {
		if has {
			count++
		}
	}

	switch count {
	case 4:
		return f.Cross
	case 3:
		switch {
		case !hasW:
			return f.LeftT
		case !hasE:
			return f.RightT
		case !hasN:
			return f.TopT
		default:
			return f.BottomT
		}
	case 2:
		switch {
		case hasN && hasS:
			return f.Vertical
		case hasE && hasW:
			return f.Horizontal
		case hasS && hasE:
			return f.TopLeft
		case hasS && hasW:
			return f.TopRight
		case hasN && hasE:
			return f.BottomLeft
		default: // hasN && hasW
			return f.BottomRight
		}
	case 1:
		if hasN || hasS {
			return f.Vertical
		}
		return f.Horizontal
	default:
		// Isolated cell: default straight segment for the mode.
		return f.Horizontal
	}
}

// axisStyle reports whether an axis is connected in exactly one style, and
// which. An axis with no neighbors, or with both styles, is not pure.
func axisStyle(a, b neighborClass) (Style, bool) {
	switch {
	case a == classAbsent && b == classAbsent:
		return Single, false
	case a == classAbsent:
		return classStyle(b), true
	case b == classAbsent:
		return classStyle(a), true
	case a == b:
		return classStyle(a), true
	default:
		return Single, false
	}
}

func classStyle(c neighborClass) Style {
	if c == classDouble {
		return Double
	}
	return Single
}

// mixedGlyph returns the mixed junction glyph for the connectivity pattern,
// keyed by the vertical axis style. Returns 0 for patterns the mixed set
// does not cover (corners).
func mixedGlyph(vertical Style, hasN, hasS, hasE, hasW bool) rune {
	count := 0
	for _, has := range []bool{hasN, hasS, hasE, hasW} {
		if has {
			count++
		}
	}
	if vertical == Single {
		switch {
		case count == 4:
			return '╪'
		case count == 3 && !hasW:
			return '╞'
		case count == 3 && !hasE:
			return '╡'
		case count == 3 && !hasN:
			return '╤'
		case count == 3 && !hasS:
			return '╧'
		}
		return 0
	}
	switch {
	case count == 4:
		return '╫'
	case count == 3 && !hasW:
		return '╟'
	case count == 3 && !hasE:
		return '╢'
	case count == 3 && !hasN:
		return '╥'
	case count == 3 && !hasS:
		return '╨'
	}
	return 0
}

// GetSmartCharacter resolves the glyph for a position from its four
// neighbors and the painter's line style. Pure function over constant
// lookup data.
func GetSmartCharacter(n Neighbors, mode Style) rune {
	code := packCode(
		classifyNeighbor(n.North, core.South),
		classifyNeighbor(n.South, core.North),
		classifyNeighbor(n.East, core.West),
		classifyNeighbor(n.West, core.East),
	)
	return resolveTable[mode][code]
}

// classifyNeighbor classifies a neighbor glyph as absent, single or double.
// Connectivity is "any box-drawing glyph present"; the style comes from the
// arm facing the center cell, falling back to the glyph's overall style when
// that arm does not exist (a parallel segment still counts as present).
func classifyNeighbor(r rune, facing core.Direction) neighborClass {
	a, ok := glyphArms[r]
	if !ok {
		return classAbsent
	}
	var arm armStyle
	switch facing {
	case core.North:
		arm = a.n
	case core.South:
		arm = a.s
	case core.East:
		arm = a.e
	case core.West:
		arm = a.w
	}
	switch arm {
	case armSingle:
		return classSingle
	case armDouble:
		return classDouble
	}
	if style, _ := StyleOf(r); style == Double {
		return classDouble
	}
	return classSingle
}

// CellReader is the grid surface the cascade inspects. scene.Layer
// satisfies it.
type CellReader interface {
	GetCell(x, y int) (core.Cell, error)
}

// Update names one neighbor whose glyph must be rewritten after a placement,
// with its prior glyph and its preserved color attributes. Colors are kept
// unconditionally even when another stroke set them; multi-color drawings
// rely on that.
type Update struct {
	X, Y         int
	OriginalChar rune
	Char         rune
	Fg, Bg       int
}

// NeighborsToUpdate computes the cascade after placing a glyph at (x,y):
// each orthogonal neighbor that holds a box-drawing glyph is re-resolved
// against its own (now changed) neighbor set, preserving that neighbor's
// existing style. Only neighbors whose glyph actually changes are returned.
func NeighborsToUpdate(grid CellReader, x, y, width, height int) []Update {
	var updates []Update
	for _, d := range []core.Direction{core.North, core.South, core.East, core.West} {
		off := d.Offset()
		nx, ny := x+off.X, y+off.Y
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		cell, err := grid.GetCell(nx, ny)
		if err != nil {
			continue
		}
		style, ok := StyleOf(cell.Char)
		if !ok {
			continue
		}
		resolved := GetSmartCharacter(NeighborGlyphs(grid, nx, ny, width, height), style)
		if resolved != cell.Char {
			updates = append(updates, Update{
				X: nx, Y: ny,
				OriginalChar: cell.Char,
				Char:         resolved,
				Fg:           cell.Fg,
				Bg:           cell.Bg,
			})
		}
	}
	return updates
}

// NeighborGlyphs reads the four cardinal neighbor glyphs of (x,y) from the
// grid. Out-of-bounds slots are reported as no neighbor.
func NeighborGlyphs(grid CellReader, x, y, width, height int) Neighbors {
	read := func(nx, ny int) rune {
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			return 0
		}
		cell, err := grid.GetCell(nx, ny)
		if err != nil {
			return 0
		}
		return cell.Char
	}
	return Neighbors{
		North: read(x, y-1),
		South: read(x, y+1),
		East:  read(x+1, y),
		West:  read(x-1, y),
	}
}
