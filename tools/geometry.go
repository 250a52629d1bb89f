package tools

import "gridd/core"

// LinePoints traces a line from (x0,y0) to (x1,y1) with Bresenham's
// algorithm, endpoints included.
func LinePoints(x0, y0, x1, y1 int) []core.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	points := make([]core.Point, 0, max(dx, dy)+1)
	x, y := x0, y0
	if dx > dy {
		err := dx / 2
		for x != x1 {
			points = append(points, core.Point{X: x, Y: y})
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
			x += sx
		}
	} else {
		err := dy / 2
		for y != y1 {
			points = append(points, core.Point{X: x, Y: y})
			err -= dx
			if err < 0 {
				x += sx
				err += dy
			}
			y += sy
		}
	}
	return append(points, core.Point{X: x1, Y: y1})
}

// RectPoints traces the outline of the rectangle spanned by two opposite
// corners, in draw order without duplicates.
func RectPoints(x0, y0, x1, y1 int) []core.Point {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	var points []core.Point
	for x := x0; x <= x1; x++ {
		points = append(points, core.Point{X: x, Y: y0})
	}
	for y := y0 + 1; y <= y1; y++ {
		points = append(points, core.Point{X: x1, Y: y})
	}
	if y1 > y0 {
		for x := x1 - 1; x >= x0; x-- {
			points = append(points, core.Point{X: x, Y: y1})
		}
	}
	if x1 > x0 {
		for y := y1 - 1; y >= y0+1; y-- {
			points = append(points, core.Point{X: x0, Y: y})
		}
	}
	return points
}

// CirclePoints traces a circle of the given radius around (cx,cy) with the
// midpoint algorithm. A radius of zero is the center point alone.
func CirclePoints(cx, cy, r int) []core.Point {
	if r < 0 {
		r = -r
	}
	if r == 0 {
		return []core.Point{{X: cx, Y: cy}}
	}

	seen := make(map[core.Point]bool)
	var points []core.Point
	add := func(x, y int) {
		p := core.Point{X: x, Y: y}
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}

	x, y := r, 0
	err := 1 - r
	for x >= y {
		add(cx+x, cy+y)
		add(cx+y, cy+x)
		add(cx-y, cy+x)
		add(cx-x, cy+y)
		add(cx-x, cy-y)
		add(cx-y, cy-x)
		add(cx+y, cy-x)
		add(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
