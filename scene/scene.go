package scene

import (
	"errors"
	"fmt"

	"gridd/core"
)

// Scene errors.
var (
	ErrUnknownLayer = errors.New("no such layer")
	ErrLastLayer    = errors.New("cannot remove the last layer")
)

// Anchor selects how existing content maps into a resized grid.
type Anchor int

const (
	// AnchorTopLeft keeps (0,0) fixed: grow pads right/bottom, shrink crops
	// right/bottom.
	AnchorTopLeft Anchor = iota
	// AnchorCenter keeps the grid center fixed.
	AnchorCenter
)

// Scene owns an ordered list of layers (bottom-to-top paint order) sharing
// one width and height, plus the identifier of the active layer. All layer
// lifecycle goes through the scene so dimensions stay consistent.
type Scene struct {
	width  int
	height int

	layers        []*Layer
	activeLayerID int
	nextLayerID   int
}

// NewScene creates a scene of the given size with a single visible
// "Background" layer, which becomes the active layer.
func NewScene(width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: %w: %dx%d", core.ErrInvalidSize, width, height)
	}
	s := &Scene{width: width, height: height, nextLayerID: 1}
	l, err := s.AddLayer("Background")
	if err != nil {
		return nil, err
	}
	s.activeLayerID = l.ID()
	return s, nil
}

// Restore rebuilds a scene from previously persisted layers. The layers are
// adopted as-is (bottom-to-top); activeLayerID must name one of them.
func Restore(width, height int, layers []*Layer, activeLayerID int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: %w: %dx%d", core.ErrInvalidSize, width, height)
	}
	if len(layers) == 0 {
		return nil, errors.New("scene: restore requires at least one layer")
	}
	s := &Scene{width: width, height: height}
	for _, l := range layers {
		if l.width != width || l.height != height {
			return nil, fmt.Errorf("scene: layer %q is %dx%d, scene is %dx%d",
				l.Name(), l.width, l.height, width, height)
		}
		if existing, _ := s.LayerByID(l.ID()); existing != nil {
			return nil, fmt.Errorf("scene: duplicate layer id %d", l.ID())
		}
		s.layers = append(s.layers, l)
		if l.ID() >= s.nextLayerID {
			s.nextLayerID = l.ID() + 1
		}
	}
	if err := s.SetActiveLayer(activeLayerID); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the scene dimensions shared by every layer.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Bounds returns the scene's cell area, anchored at the origin.
func (s *Scene) Bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: s.width, Y: s.height}}
}

// Width returns the scene width in cells.
func (s *Scene) Width() int { return s.width }

// Height returns the scene height in cells.
func (s *Scene) Height() int { return s.height }

// Layers returns the layer stack in bottom-to-top paint order. The slice is
// a copy; the layers are shared.
func (s *Scene) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// LayerCount returns the number of layers.
func (s *Scene) LayerCount() int {
	return len(s.layers)
}

// LayerByID returns the layer with the given id.
func (s *Scene) LayerByID(id int) (*Layer, error) {
	for _, l := range s.layers {
		if l.ID() == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("layer %d: %w", id, ErrUnknownLayer)
}

// ActiveLayer returns the layer edits currently target.
func (s *Scene) ActiveLayer() *Layer {
	l, _ := s.LayerByID(s.activeLayerID)
	return l
}

// ActiveLayerID returns the id of the active layer.
func (s *Scene) ActiveLayerID() int {
	return s.activeLayerID
}

// SetActiveLayer makes the given layer the edit target.
func (s *Scene) SetActiveLayer(id int) error {
	if _, err := s.LayerByID(id); err != nil {
		return err
	}
	s.activeLayerID = id
	return nil
}

// AddLayer appends a new empty layer on top of the stack.
func (s *Scene) AddLayer(name string) (*Layer, error) {
	l, err := NewLayer(s.nextLayerID, name, s.width, s.height)
	if err != nil {
		return nil, err
	}
	s.nextLayerID++
	s.layers = append(s.layers, l)
	return l, nil
}

// DuplicateLayer inserts a deep copy directly above the source layer.
func (s *Scene) DuplicateLayer(id int) (*Layer, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("layer %d: %w", id, ErrUnknownLayer)
	}
	dup := s.layers[idx].Clone(s.nextLayerID)
	dup.SetName(s.layers[idx].Name() + " copy")
	s.nextLayerID++
	s.layers = append(s.layers, nil)
	copy(s.layers[idx+2:], s.layers[idx+1:])
	s.layers[idx+1] = dup
	return dup, nil
}

// RemoveLayer deletes a layer. The last remaining layer cannot be removed;
// if the active layer is removed, the layer below it (or the new bottom)
// becomes active.
func (s *Scene) RemoveLayer(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("layer %d: %w", id, ErrUnknownLayer)
	}
	if len(s.layers) == 1 {
		return ErrLastLayer
	}
	s.layers = append(s.layers[:idx], s.layers[idx+1:]...)
	if s.activeLayerID == id {
		if idx > 0 {
			idx--
		}
		s.activeLayerID = s.layers[idx].ID()
	}
	return nil
}

// MoveLayer moves a layer to the given stack position (0 = bottom).
func (s *Scene) MoveLayer(id, position int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("layer %d: %w", id, ErrUnknownLayer)
	}
	if position < 0 || position >= len(s.layers) {
		return fmt.Errorf("position %d: %w", position, core.ErrOutOfBounds)
	}
	l := s.layers[idx]
	s.layers = append(s.layers[:idx], s.layers[idx+1:]...)
	s.layers = append(s.layers, nil)
	copy(s.layers[position+1:], s.layers[position:])
	s.layers[position] = l
	return nil
}

// CompositeCell returns what (x,y) looks like with all visible layers
// painted bottom-to-top: the topmost visible non-blank glyph wins, and the
// topmost non-transparent background wins independently.
func (s *Scene) CompositeCell(x, y int) (core.Cell, error) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.Cell{}, fmt.Errorf("composite (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	out := core.DefaultCell()
	for _, l := range s.layers {
		if !l.Visible() {
			continue
		}
		c := l.cells[l.Index(x, y)]
		if c.Char != ' ' {
			out.Char = c.Char
			out.Fg = c.Fg
		}
		if c.Bg != core.Transparent {
			out.Bg = c.Bg
		}
	}
	return out, nil
}

// Resize changes the scene dimensions, resizing every layer consistently.
// Content is padded or cropped according to the anchor; it is never scaled.
// Resizing invalidates any command history built against the old layers.
func (s *Scene) Resize(width, height int, anchor Anchor) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scene: %w: %dx%d", core.ErrInvalidSize, width, height)
	}
	dx, dy := 0, 0
	if anchor == AnchorCenter {
		dx = (width - s.width) / 2
		dy = (height - s.height) / 2
	}
	resized := make([]*Layer, len(s.layers))
	for i, l := range s.layers {
		n, err := l.resized(width, height, dx, dy)
		if err != nil {
			return err
		}
		resized[i] = n
	}
	s.layers = resized
	s.width = width
	s.height = height
	return nil
}

func (s *Scene) indexOf(id int) int {
	for i, l := range s.layers {
		if l.ID() == id {
			return i
		}
	}
	return -1
}
