package tools

import (
	"testing"

	"gridd/core"
)

// TestLinePoints checks endpoints, direction independence and diagonals.
func TestLinePoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		count          int
	}{
		{"Single point", 2, 2, 2, 2, 1},
		{"Horizontal", 0, 0, 4, 0, 5},
		{"Horizontal reversed", 4, 0, 0, 0, 5},
		{"Vertical", 1, 1, 1, 5, 5},
		{"Diagonal", 0, 0, 3, 3, 4},
		{"Shallow slope", 0, 0, 6, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := LinePoints(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(points) != tt.count {
				t.Fatalf("LinePoints() returned %d points, want %d: %v", len(points), tt.count, points)
			}
			if points[0] != (core.Point{X: tt.x0, Y: tt.y0}) {
				t.Errorf("first point = %v, want (%d,%d)", points[0], tt.x0, tt.y0)
			}
			if points[len(points)-1] != (core.Point{X: tt.x1, Y: tt.y1}) {
				t.Errorf("last point = %v, want (%d,%d)", points[len(points)-1], tt.x1, tt.y1)
			}
		})
	}
}

// TestRectPoints checks outlines have no duplicates and cover the corners.
func TestRectPoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		count          int
	}{
		{"Single cell", 1, 1, 1, 1, 1},
		{"Horizontal bar", 0, 0, 3, 0, 4},
		{"Vertical bar", 0, 0, 0, 3, 4},
		{"3x3 outline", 0, 0, 2, 2, 8},
		{"Reversed corners", 2, 2, 0, 0, 8},
		{"4x5 outline", 0, 0, 3, 4, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := RectPoints(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(points) != tt.count {
				t.Fatalf("RectPoints() returned %d points, want %d: %v", len(points), tt.count, points)
			}
			seen := make(map[core.Point]bool)
			for _, p := range points {
				if seen[p] {
					t.Errorf("duplicate point %v", p)
				}
				seen[p] = true
			}
		})
	}
}

// TestCirclePoints checks radii lie on the circle and symmetry holds.
func TestCirclePoints(t *testing.T) {
	t.Run("Radius zero is the center", func(t *testing.T) {
		points := CirclePoints(3, 3, 0)
		if len(points) != 1 || points[0] != (core.Point{X: 3, Y: 3}) {
			t.Errorf("CirclePoints(r=0) = %v, want center only", points)
		}
	})

	t.Run("Radius two hits the axis extremes", func(t *testing.T) {
		points := CirclePoints(5, 5, 2)
		want := []core.Point{{X: 7, Y: 5}, {X: 3, Y: 5}, {X: 5, Y: 7}, {X: 5, Y: 3}}
		has := make(map[core.Point]bool)
		for _, p := range points {
			has[p] = true
		}
		for _, w := range want {
			if !has[w] {
				t.Errorf("circle misses %v: %v", w, points)
			}
		}
	})

	t.Run("No duplicates", func(t *testing.T) {
		points := CirclePoints(0, 0, 4)
		seen := make(map[core.Point]bool)
		for _, p := range points {
			if seen[p] {
				t.Errorf("duplicate point %v", p)
			}
			seen[p] = true
		}
	})
}
