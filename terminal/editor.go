// Package terminal is the interactive tcell shell: it owns the screen, maps
// pointer and key events onto tools, and renders the scene composite. All
// document mutation still flows through the command history; the shell only
// holds presentation state.
package terminal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridd/boxdraw"
	"gridd/config"
	"gridd/core"
	"gridd/event"
	"gridd/export"
	"gridd/history"
	"gridd/palette"
	"gridd/project"
	"gridd/scene"
	"gridd/tools"
)

// Editor drives one editing session over a scene.
type Editor struct {
	screen tcell.Screen
	cfg    config.Config

	scn  *scene.Scene
	hist *history.History
	pal  *palette.Palette

	toolset []tools.Tool
	toolIdx int
	ctx     tools.Context

	filename string
	status   string
	dirty    bool
	quit     bool

	// Pointer gesture state.
	dragging bool
	lastX    int
	lastY    int

	// Merging stays off until this instant once a gesture ends. The
	// deadline is checked on the event loop when the next gesture starts;
	// no goroutine ever touches the history.
	mergeResume time.Time

	// When set, the next rune typed becomes the brush glyph.
	pendingGlyph bool
}

// NewEditor wires a session: scene, history with the configured limit, tool
// set, and a status-line emitter.
func NewEditor(cfg config.Config, scn *scene.Scene, pal *palette.Palette, filename string) *Editor {
	e := &Editor{
		cfg:      cfg,
		scn:      scn,
		pal:      pal,
		toolset:  tools.Standard(),
		filename: filename,
		status:   "ready",
	}
	emitter := event.EmitterFunc(e.onEvent)
	e.hist = history.NewHistory(cfg.HistoryLimit, emitter)
	e.ctx = tools.Context{
		Scene:        scn,
		History:      e.hist,
		Emitter:      emitter,
		Char:         '#',
		Fg:           core.DefaultFg,
		Bg:           core.Transparent,
		LineStyle:    boxdraw.Single,
		SmartLines:   true,
		SprayRadius:  cfg.SprayRadius,
		SprayDensity: cfg.SprayDensity,
	}
	return e
}

// Run initializes the real terminal screen and blocks until the user quits.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return e.RunWithScreen(screen)
}

// RunWithScreen runs the event loop on a prepared screen. The screen is
// finalized on return, panics included.
func (e *Editor) RunWithScreen(screen tcell.Screen) error {
	e.screen = screen
	screen.EnableMouse()
	defer screen.Fini()

	e.draw()
	for !e.quit {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		e.HandleEvent(ev)
		e.draw()
	}
	return nil
}

// onEvent turns history notifications into status-line text.
func (e *Editor) onEvent(ev event.Event) {
	switch ev := ev.(type) {
	case event.Executed:
		e.status = ev.Description
		e.dirty = true
	case event.Merged:
		e.status = ev.Description
		e.dirty = true
	case event.Undone:
		e.status = "undid: " + ev.Description
		e.dirty = true
	case event.Redone:
		e.status = "redid: " + ev.Description
		e.dirty = true
	case event.HistoryCleared:
		e.status = "history cleared"
	}
}

// HandleEvent dispatches one tcell event. Exposed for the event loop and
// for tests; rendering happens separately.
func (e *Editor) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventMouse:
		e.handleMouse(ev)
	case *tcell.EventResize:
		if e.screen != nil {
			e.screen.Sync()
		}
	}
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.pendingGlyph = false
		e.status = "ready"
		return
	case tcell.KeyCtrlC:
		e.quit = true
		return
	case tcell.KeyTab:
		e.cycleActiveLayer()
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if e.pendingGlyph {
		e.pendingGlyph = false
		e.ctx.Char = r
		e.status = fmt.Sprintf("glyph set to %q", r)
		return
	}

	switch r {
	case 'q':
		e.quit = true
	case 'u':
		if err := e.hist.Undo(); err != nil {
			e.status = err.Error()
		}
	case 'U':
		if err := e.hist.Redo(); err != nil {
			e.status = err.Error()
		}
	case 'b':
		e.selectTool(0)
	case 'e':
		e.selectTool(1)
	case 'l':
		e.selectTool(2)
	case 'r':
		e.selectTool(3)
	case 'o':
		e.selectTool(4)
	case 'f':
		e.selectTool(5)
	case 's':
		e.selectTool(6)
	case 'p':
		e.selectTool(7)
	case 't':
		e.pendingGlyph = true
		e.status = "type the new brush glyph"
	case ']':
		e.ctx.Fg = (e.ctx.Fg + 1) % e.pal.Size()
	case '[':
		e.ctx.Fg = (e.ctx.Fg + e.pal.Size() - 1) % e.pal.Size()
	case '}':
		e.ctx.Bg = e.nextBg(e.ctx.Bg, 1)
	case '{':
		e.ctx.Bg = e.nextBg(e.ctx.Bg, -1)
	case 'd':
		if e.ctx.LineStyle == boxdraw.Single {
			e.ctx.LineStyle = boxdraw.Double
		} else {
			e.ctx.LineStyle = boxdraw.Single
		}
	case 'g':
		e.ctx.SmartLines = !e.ctx.SmartLines
		if e.ctx.SmartLines {
			e.status = "smart lines on"
		} else {
			e.status = "smart lines off"
		}
	case 'm':
		e.ctx.Mode = (e.ctx.Mode + 1) % 3
	case 'n':
		e.addLayer()
	case 'v':
		l := e.scn.ActiveLayer()
		l.SetVisible(!l.Visible())
	case 'L':
		l := e.scn.ActiveLayer()
		l.SetLocked(!l.Locked())
	case 'w':
		e.save()
	case 'x':
		e.exportFile(export.FormatText)
	case 'X':
		e.exportFile(export.FormatANSI)
	case 'c':
		e.copyToClipboard()
	}
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !e.dragging:
		if !e.onCanvas(x, y) {
			return
		}
		e.beginGesture(x, y)
	case pressed && e.dragging:
		if x == e.lastX && y == e.lastY {
			return
		}
		e.lastX, e.lastY = x, y
		if err := e.tool().PointerDrag(&e.ctx, x, y); err != nil {
			e.status = err.Error()
		}
	case !pressed && e.dragging:
		e.endGesture()
	}
}

func (e *Editor) beginGesture(x, y int) {
	e.dragging = true
	e.lastX, e.lastY = x, y
	// The stroke's first command may fold into the previous gesture only
	// once the cooldown has elapsed.
	e.hist.SetMergingEnabled(!time.Now().Before(e.mergeResume))
	if err := e.tool().PointerDown(&e.ctx, x, y); err != nil {
		e.status = err.Error()
		e.dragging = false
		return
	}
	// Drag samples of this gesture always fold together.
	e.hist.SetMergingEnabled(true)
}

func (e *Editor) endGesture() {
	e.dragging = false
	if err := e.tool().PointerUp(&e.ctx, e.lastX, e.lastY); err != nil {
		e.status = err.Error()
	}
	// Hold merging off for the cooldown so the next stroke starts its own
	// undo step even inside the merge window.
	e.hist.SetMergingEnabled(false)
	e.mergeResume = time.Now().Add(time.Duration(e.cfg.MergeCooldownMS) * time.Millisecond)
}

// onCanvas reports whether a screen position addresses a scene cell.
func (e *Editor) onCanvas(x, y int) bool {
	return e.scn.Bounds().Contains(core.Point{X: x, Y: y})
}

func (e *Editor) tool() tools.Tool {
	return e.toolset[e.toolIdx]
}

func (e *Editor) selectTool(i int) {
	if i < 0 || i >= len(e.toolset) {
		return
	}
	e.toolIdx = i
	e.status = e.toolset[i].Name()
}

// nextBg cycles the background through transparent plus every palette index.
func (e *Editor) nextBg(bg, dir int) int {
	n := e.pal.Size() + 1 // transparent occupies one slot
	slot := bg + 1        // transparent (-1) -> 0
	slot = (slot + dir + n) % n
	return slot - 1
}

func (e *Editor) cycleActiveLayer() {
	layers := e.scn.Layers()
	for i, l := range layers {
		if l.ID() == e.scn.ActiveLayerID() {
			next := layers[(i+1)%len(layers)]
			e.scn.SetActiveLayer(next.ID())
			e.status = "layer: " + next.Name()
			return
		}
	}
}

func (e *Editor) addLayer() {
	l, err := e.scn.AddLayer(fmt.Sprintf("Layer %d", e.scn.LayerCount()+1))
	if err != nil {
		e.status = err.Error()
		return
	}
	e.scn.SetActiveLayer(l.ID())
	e.status = "added " + l.Name()
}

func (e *Editor) save() {
	if e.filename == "" {
		e.status = "no filename; start with one to save"
		return
	}
	name := strings.TrimSuffix(filepath.Base(e.filename), filepath.Ext(e.filename))
	if err := project.Save(e.filename, project.FromScene(e.scn, name, e.pal.ID)); err != nil {
		e.status = err.Error()
		return
	}
	e.dirty = false
	e.status = "saved " + e.filename
}

func (e *Editor) exportFile(format export.Format) {
	exp, err := export.NewExporter(format, e.pal)
	if err != nil {
		e.status = err.Error()
		return
	}
	out, err := exp.Export(e.scn)
	if err != nil {
		e.status = err.Error()
		return
	}
	base := "untitled"
	if e.filename != "" {
		base = strings.TrimSuffix(e.filename, filepath.Ext(e.filename))
	}
	path := base + exp.FileExtension()
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		e.status = err.Error()
		return
	}
	e.status = "exported " + path
}

func (e *Editor) copyToClipboard() {
	if err := export.CopyToClipboard(export.NewTextExporter(), e.scn); err != nil {
		e.status = err.Error()
		return
	}
	e.status = "copied to clipboard"
}
