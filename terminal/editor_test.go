package terminal

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"gridd/config"
	"gridd/core"
	"gridd/palette"
	"gridd/project"
	"gridd/scene"
)

func newTestEditor(t *testing.T, filename string) *Editor {
	t.Helper()
	s, err := scene.NewScene(10, 6)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	return NewEditor(config.Defaults(), s, palette.Default(), filename)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(e *Editor, x, y int) {
	e.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	e.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// TestToolSelectionKeys maps each tool key onto the expected tool.
func TestToolSelectionKeys(t *testing.T) {
	tests := []struct {
		name string
		key  rune
		want string
	}{
		{"Brush", 'b', "brush"},
		{"Eraser", 'e', "eraser"},
		{"Line", 'l', "line"},
		{"Rectangle", 'r', "rectangle"},
		{"Circle", 'o', "circle"},
		{"Fill", 'f', "fill"},
		{"Spray", 's', "spray"},
		{"Picker", 'p', "picker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, "")
			e.HandleEvent(key(tt.key))
			if got := e.tool().Name(); got != tt.want {
				t.Errorf("tool after %q = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// TestClickPaintsAndUndoes: a click paints the brush glyph; 'u' reverts it.
func TestClickPaintsAndUndoes(t *testing.T) {
	e := newTestEditor(t, "")
	click(e, 3, 2)

	c, err := e.scn.ActiveLayer().GetCell(3, 2)
	if err != nil {
		t.Fatalf("GetCell() error = %v", err)
	}
	if c.Char != '#' {
		t.Errorf("cell after click = %q, want '#'", c.Char)
	}

	e.HandleEvent(key('u'))
	c, _ = e.scn.ActiveLayer().GetCell(3, 2)
	if c != core.DefaultCell() {
		t.Errorf("cell after undo = %+v, want default", c)
	}
	if undo, _ := e.hist.Sizes(); undo != 0 {
		t.Errorf("undo depth = %d, want 0", undo)
	}
}

// TestGestureSeparation: consecutive clicks land as separate undo steps
// because merging stays off during the cooldown.
func TestGestureSeparation(t *testing.T) {
	e := newTestEditor(t, "")
	click(e, 1, 1)
	click(e, 2, 1)

	if undo, _ := e.hist.Sizes(); undo != 2 {
		t.Errorf("undo depth = %d, want 2 separate steps", undo)
	}
	if e.hist.MergingEnabled() {
		t.Error("merging re-enabled before the cooldown elapsed")
	}
}

// TestDragMergesWithinGesture: a press-drag-release is one undo step.
func TestDragMergesWithinGesture(t *testing.T) {
	e := newTestEditor(t, "")
	e.HandleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	e.HandleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	e.HandleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	e.HandleEvent(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))

	if undo, _ := e.hist.Sizes(); undo != 1 {
		t.Errorf("undo depth = %d, want 1 merged gesture", undo)
	}
	for x := 1; x <= 3; x++ {
		c, _ := e.scn.ActiveLayer().GetCell(x, 1)
		if c.Char != '#' {
			t.Errorf("cell (%d,1) = %q, want '#'", x, c.Char)
		}
	}
}

// TestMergeResumesAfterCooldown: once the cooldown has elapsed, the next
// stroke folds into the previous one through the merge window. The resume
// decision happens on the event loop when the gesture starts, never on a
// timer goroutine.
func TestMergeResumesAfterCooldown(t *testing.T) {
	s, err := scene.NewScene(10, 6)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	cfg := config.Defaults()
	cfg.MergeCooldownMS = 0
	e := NewEditor(cfg, s, palette.Default(), "")

	click(e, 1, 1)
	if e.hist.MergingEnabled() {
		t.Error("merging still enabled between gestures")
	}
	click(e, 2, 1)

	if undo, _ := e.hist.Sizes(); undo != 1 {
		t.Errorf("undo depth = %d, want 1 merged step after cooldown", undo)
	}
}

// TestUndoErrorSurfaced: a failing undo (locked layer) reports through the
// status line and leaves the command on the undo stack.
func TestUndoErrorSurfaced(t *testing.T) {
	e := newTestEditor(t, "")
	click(e, 2, 2)
	e.HandleEvent(key('L'))
	e.HandleEvent(key('u'))

	if !strings.Contains(e.status, "locked") {
		t.Errorf("status = %q, want the locked-layer error", e.status)
	}
	if undo, _ := e.hist.Sizes(); undo != 1 {
		t.Errorf("undo depth = %d, want the failed undo kept on the stack", undo)
	}

	e.HandleEvent(key('L'))
	e.HandleEvent(key('u'))
	c, _ := e.scn.ActiveLayer().GetCell(2, 2)
	if c != core.DefaultCell() {
		t.Errorf("cell after unlock and undo = %+v, want default", c)
	}
}

// TestClickOffCanvasIgnored: presses outside the scene start no gesture.
func TestClickOffCanvasIgnored(t *testing.T) {
	e := newTestEditor(t, "")
	click(e, 50, 50)

	if undo, _ := e.hist.Sizes(); undo != 0 {
		t.Errorf("undo depth = %d, want 0", undo)
	}
}

// TestBackgroundCycle wraps through transparent and every palette index.
func TestBackgroundCycle(t *testing.T) {
	e := newTestEditor(t, "")
	if e.ctx.Bg != core.Transparent {
		t.Fatalf("initial bg = %d, want transparent", e.ctx.Bg)
	}

	e.HandleEvent(key('}'))
	if e.ctx.Bg != 0 {
		t.Errorf("bg after '}' = %d, want 0", e.ctx.Bg)
	}
	e.HandleEvent(key('{'))
	e.HandleEvent(key('{'))
	if e.ctx.Bg != e.pal.Size()-1 {
		t.Errorf("bg after wrapping back = %d, want %d", e.ctx.Bg, e.pal.Size()-1)
	}
}

// TestGlyphPrompt: 't' arms the prompt, the next rune becomes the glyph,
// and escape cancels an armed prompt.
func TestGlyphPrompt(t *testing.T) {
	e := newTestEditor(t, "")
	e.HandleEvent(key('t'))
	e.HandleEvent(key('@'))
	if e.ctx.Char != '@' {
		t.Errorf("glyph = %q, want '@'", e.ctx.Char)
	}

	e.HandleEvent(key('t'))
	e.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	e.HandleEvent(key('%'))
	if e.ctx.Char != '@' {
		t.Errorf("glyph after cancelled prompt = %q, want '@'", e.ctx.Char)
	}
}

// TestLayerKeys: 'n' adds and activates a layer, tab cycles back around.
func TestLayerKeys(t *testing.T) {
	e := newTestEditor(t, "")
	e.HandleEvent(key('n'))
	if e.scn.LayerCount() != 2 {
		t.Fatalf("LayerCount() = %d, want 2", e.scn.LayerCount())
	}
	added := e.scn.ActiveLayerID()

	e.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if e.scn.ActiveLayerID() == added {
		t.Error("tab did not change the active layer")
	}
	e.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if e.scn.ActiveLayerID() != added {
		t.Error("tab did not cycle back to the added layer")
	}
}

// TestLockedLayerReportsError: gestures on a locked layer leave the scene
// untouched and surface the error in the status line.
func TestLockedLayerReportsError(t *testing.T) {
	e := newTestEditor(t, "")
	e.HandleEvent(key('L'))
	click(e, 2, 2)

	if undo, _ := e.hist.Sizes(); undo != 0 {
		t.Errorf("undo depth = %d, want 0", undo)
	}
	if e.status == "ready" {
		t.Error("status line did not report the locked layer")
	}
}

// TestSaveKey writes a loadable project file.
func TestSaveKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.json")
	e := newTestEditor(t, path)
	click(e, 0, 0)
	e.HandleEvent(key('w'))

	doc, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Name != "art" {
		t.Errorf("saved name = %q, want art", doc.Name)
	}
	if e.dirty {
		t.Error("dirty flag not cleared by save")
	}
}

// TestQuitKeys: both quit bindings set the flag.
func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		e := newTestEditor(t, "")
		e.HandleEvent(ev)
		if !e.quit {
			t.Errorf("event %v did not quit", ev.Key())
		}
	}
}
