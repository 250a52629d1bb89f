// Package boxdraw resolves box-drawing junctions: given the four cardinal
// neighbors of a grid position it computes the correct glyph (segment,
// corner, tee, cross) for single, double and mixed line styles, and the
// cascade of already-placed neighbors that must be rewritten to stay
// topologically consistent.
package boxdraw

// Style selects a box-drawing line family.
type Style int

const (
	Single Style = iota
	Double
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// armStyle is the line style of one arm of a glyph.
type armStyle uint8

const (
	armNone armStyle = iota
	armSingle
	armDouble
)

// arms describes which directions a glyph connects in, and with which style.
// Order: north, south, east, west.
type arms struct {
	n, s, e, w armStyle
}

// glyphArms is the full inventory of glyphs the resolver understands:
// 11 single roles, 11 double roles, and the 10 mixed tee/cross glyphs.
var glyphArms = map[rune]arms{
	// Single-line family
	'─': {armNone, armNone, armSingle, armSingle},
	'│': {armSingle, armSingle, armNone, armNone},
	'┌': {armNone, armSingle, armSingle, armNone},
	'┐': {armNone, armSingle, armNone, armSingle},
	'└': {armSingle, armNone, armSingle, armNone},
	'┘': {armSingle, armNone, armNone, armSingle},
	'├': {armSingle, armSingle, armSingle, armNone},
	'┤': {armSingle, armSingle, armNone, armSingle},
	'┬': {armNone, armSingle, armSingle, armSingle},
	'┴': {armSingle, armNone, armSingle, armSingle},
	'┼': {armSingle, armSingle, armSingle, armSingle},

	// Double-line family
	'═': {armNone, armNone, armDouble, armDouble},
	'║': {armDouble, armDouble, armNone, armNone},
	'╔': {armNone, armDouble, armDouble, armNone},
	'╗': {armNone, armDouble, armNone, armDouble},
	'╚': {armDouble, armNone, armDouble, armNone},
	'╝': {armDouble, armNone, armNone, armDouble},
	'╠': {armDouble, armDouble, armDouble, armNone},
	'╣': {armDouble, armDouble, armNone, armDouble},
	'╦': {armNone, armDouble, armDouble, armDouble},
	'╩': {armDouble, armNone, armDouble, armDouble},
	'╬': {armDouble, armDouble, armDouble, armDouble},

	// Mixed junctions: single vertical with double horizontal
	'╞': {armSingle, armSingle, armDouble, armNone},
	'╡': {armSingle, armSingle, armNone, armDouble},
	'╤': {armNone, armSingle, armDouble, armDouble},
	'╧': {armSingle, armNone, armDouble, armDouble},
	'╪': {armSingle, armSingle, armDouble, armDouble},

	// Mixed junctions: double vertical with single horizontal
	'╟': {armDouble, armDouble, armSingle, armNone},
	'╢': {armDouble, armDouble, armNone, armSingle},
	'╥': {armNone, armDouble, armSingle, armSingle},
	'╨': {armDouble, armNone, armSingle, armSingle},
	'╫': {armDouble, armDouble, armSingle, armSingle},
}

// family holds the 11 glyph roles of one line style.
type family struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	LeftT       rune // arms north, south, east
	RightT      rune // arms north, south, west
	TopT        rune // arms south, east, west
	BottomT     rune // arms north, east, west
	Cross       rune
}

var singleFamily = family{
	Horizontal: '─', Vertical: '│',
	TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	LeftT: '├', RightT: '┤', TopT: '┬', BottomT: '┴',
	Cross: '┼',
}

var doubleFamily = family{
	Horizontal: '═', Vertical: '║',
	TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	LeftT: '╠', RightT: '╣', TopT: '╦', BottomT: '╩',
	Cross: '╬',
}

func familyFor(mode Style) family {
	if mode == Double {
		return doubleFamily
	}
	return singleFamily
}

// IsBoxDrawingChar reports whether r is any glyph the resolver understands.
func IsBoxDrawingChar(r rune) bool {
	_, ok := glyphArms[r]
	return ok
}

// IsSingleLineChar reports whether r belongs to the pure single-line family.
func IsSingleLineChar(r rune) bool {
	a, ok := glyphArms[r]
	if !ok {
		return false
	}
	return !hasArmStyle(a, armDouble) && hasArmStyle(a, armSingle)
}

// IsDoubleLineChar reports whether r belongs to the pure double-line family.
func IsDoubleLineChar(r rune) bool {
	a, ok := glyphArms[r]
	if !ok {
		return false
	}
	return !hasArmStyle(a, armSingle) && hasArmStyle(a, armDouble)
}

// IsMixedChar reports whether r is one of the mixed junction glyphs.
func IsMixedChar(r rune) bool {
	a, ok := glyphArms[r]
	if !ok {
		return false
	}
	return hasArmStyle(a, armSingle) && hasArmStyle(a, armDouble)
}

// CanConnectHorizontally reports whether r has an east or west arm, i.e.
// participates in horizontal line continuity.
func CanConnectHorizontally(r rune) bool {
	a, ok := glyphArms[r]
	return ok && (a.e != armNone || a.w != armNone)
}

// CanConnectVertically reports whether r has a north or south arm.
func CanConnectVertically(r rune) bool {
	a, ok := glyphArms[r]
	return ok && (a.n != armNone || a.s != armNone)
}

// StyleOf infers the line style of an existing glyph for style continuity.
// Mixed glyphs report Double: their double-oriented axis is authoritative.
func StyleOf(r rune) (Style, bool) {
	a, ok := glyphArms[r]
	if !ok {
		return Single, false
	}
	if hasArmStyle(a, armDouble) {
		return Double, true
	}
	return Single, true
}

func hasArmStyle(a arms, s armStyle) bool {
	return a.n == s || a.s == s || a.e == s || a.w == s
}
