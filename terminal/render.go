package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridd/core"
)

// draw paints the scene composite and the status line. The canvas maps
// 1:1 onto screen cells starting at the origin; anything past the scene
// bounds stays at the terminal default.
func (e *Editor) draw() {
	if e.screen == nil {
		return
	}
	e.screen.Clear()

	b := e.scn.Bounds()
	sw, sh := e.screen.Size()
	for y := 0; y < b.Height() && y < sh-1; y++ {
		for x := 0; x < b.Width() && x < sw; x++ {
			c, err := e.scn.CompositeCell(x, y)
			if err != nil {
				continue
			}
			e.screen.SetContent(x, y, c.Char, nil, e.style(c))
		}
	}

	e.drawStatus(sw, sh)
	e.screen.Show()
}

// style resolves a cell's palette indices to a tcell style. Transparent
// backgrounds keep the terminal's own background.
func (e *Editor) style(c core.Cell) tcell.Style {
	r, g, b := e.pal.RGB255(c.Fg)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	if c.Bg != core.Transparent {
		r, g, b = e.pal.RGB255(c.Bg)
		st = st.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return st
}

func (e *Editor) drawStatus(sw, sh int) {
	undo, redo := e.hist.Sizes()
	mark := ""
	if e.dirty {
		mark = "*"
	}
	bg := "transparent"
	if e.ctx.Bg != core.Transparent {
		bg = fmt.Sprintf("%d", e.ctx.Bg)
	}
	line := fmt.Sprintf(" %s%s │ %c fg:%d bg:%s │ undo:%d redo:%d │ %s",
		e.tool().Name(), mark, e.ctx.Char, e.ctx.Fg, bg, undo, redo, e.status)

	st := tcell.StyleDefault.Reverse(true)
	y := sh - 1
	x := 0
	for _, r := range line {
		if x >= sw {
			break
		}
		e.screen.SetContent(x, y, r, nil, st)
		x++
	}
	for ; x < sw; x++ {
		e.screen.SetContent(x, y, ' ', nil, st)
	}
}
