package export

import (
	"strings"
	"testing"

	"gridd/core"
	"gridd/palette"
	"gridd/scene"
)

func sceneWith(t *testing.T, w, h int, cells map[[2]int]core.Cell) *scene.Scene {
	t.Helper()
	s, err := scene.NewScene(w, h)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	for pos, c := range cells {
		if err := s.ActiveLayer().SetCell(pos[0], pos[1], c); err != nil {
			t.Fatalf("SetCell(%d,%d) error = %v", pos[0], pos[1], err)
		}
	}
	return s
}

// TestTextExporter_TrimsTrailingBlanks: rows lose trailing spaces and the
// grid loses trailing empty rows, but interior blanks survive.
func TestTextExporter_TrimsTrailingBlanks(t *testing.T) {
	s := sceneWith(t, 6, 4, map[[2]int]core.Cell{
		{0, 0}: {Char: 'h', Fg: 7, Bg: core.Transparent},
		{2, 0}: {Char: 'i', Fg: 7, Bg: core.Transparent},
		{1, 2}: {Char: 'x', Fg: 7, Bg: core.Transparent},
	})

	out, err := NewTextExporter().Export(s)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	want := "h i\n\n x\n"
	if out != want {
		t.Errorf("Export() = %q, want %q", out, want)
	}
}

// TestTextExporter_WideRunes: a double-width glyph swallows its shadow
// column so rows keep their visual width.
func TestTextExporter_WideRunes(t *testing.T) {
	s := sceneWith(t, 4, 1, map[[2]int]core.Cell{
		{0, 0}: {Char: '界', Fg: 7, Bg: core.Transparent},
		{2, 0}: {Char: '!', Fg: 7, Bg: core.Transparent},
	})

	out, err := NewTextExporter().Export(s)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "界!\n"; out != want {
		t.Errorf("Export() = %q, want %q", out, want)
	}
}

// TestANSIExporter_Colors: foreground codes appear, change only when the
// color changes, and every row ends with a reset.
func TestANSIExporter_Colors(t *testing.T) {
	s := sceneWith(t, 3, 1, map[[2]int]core.Cell{
		{0, 0}: {Char: 'a', Fg: 9, Bg: core.Transparent},
		{1, 0}: {Char: 'b', Fg: 9, Bg: core.Transparent},
		{2, 0}: {Char: 'c', Fg: 0, Bg: core.Transparent},
	})

	out, err := NewANSIExporter(palette.Default()).Export(s)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got := strings.Count(out, "\x1b[38;2;255;0;0m"); got != 1 {
		t.Errorf("bright red emitted %d times, want 1 (run-length coding)", got)
	}
	if !strings.Contains(out, "\x1b[38;2;0;0;0m") {
		t.Error("black foreground code missing")
	}
	if !strings.HasSuffix(out, "\x1b[0m\n") {
		t.Errorf("row does not end with reset: %q", out)
	}
}

// TestANSIExporter_TransparentBg uses the default-background code instead
// of inventing a color.
func TestANSIExporter_TransparentBg(t *testing.T) {
	s := sceneWith(t, 2, 1, map[[2]int]core.Cell{
		{0, 0}: {Char: 'x', Fg: 7, Bg: 4},
		{1, 0}: {Char: 'y', Fg: 7, Bg: core.Transparent},
	})

	out, err := NewANSIExporter(nil).Export(s)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(out, "\x1b[48;2;0;0;238m") {
		t.Errorf("blue background code missing: %q", out)
	}
	if !strings.Contains(out, "\x1b[49m") {
		t.Errorf("default-background code missing: %q", out)
	}
}

// TestNewExporter maps format names to exporters.
func TestNewExporter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantExt string
		wantErr bool
	}{
		{"Text", "text", ".txt", false},
		{"Text alias", "txt", ".txt", false},
		{"ANSI", "ansi", ".ans", false},
		{"Unknown", "svg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("ParseFormat() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			e, err := NewExporter(f, nil)
			if err != nil {
				t.Fatalf("NewExporter() error = %v", err)
			}
			if e.FileExtension() != tt.wantExt {
				t.Errorf("FileExtension() = %q, want %q", e.FileExtension(), tt.wantExt)
			}
		})
	}
}

// TestHiddenLayersExcluded: invisible layers never reach the output.
func TestHiddenLayersExcluded(t *testing.T) {
	s := sceneWith(t, 3, 1, map[[2]int]core.Cell{
		{0, 0}: {Char: 'a', Fg: 7, Bg: core.Transparent},
	})
	top, err := s.AddLayer("Hidden")
	if err != nil {
		t.Fatalf("AddLayer() error = %v", err)
	}
	if err := top.SetCell(0, 0, core.Cell{Char: 'Z', Fg: 7, Bg: core.Transparent}); err != nil {
		t.Fatalf("SetCell() error = %v", err)
	}
	top.SetVisible(false)

	out, err := NewTextExporter().Export(s)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "a\n"; out != want {
		t.Errorf("Export() = %q, want %q", out, want)
	}
}
