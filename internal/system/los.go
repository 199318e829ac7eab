package system

import "ascii-roguelike/internal/gamemap"

// Line returns the Bresenham line from a to b, both ends included.
//
// Each iteration may step x, y or both: x steps when 2*err > -dy and y steps
// when 2*err < dx, with err starting at dx-dy. The path from a to b is fixed
// for a given pair, which is what visibility tests trace against.
func Line(a, b gamemap.Position) []gamemap.Position {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx - dy

	pts := make([]gamemap.Position, 0, max(dx, dy)+1)
	p := a
	pts = append(pts, p)
	for p != b {
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
		pts = append(pts, p)
	}
	return pts
}

// lineOfSight reports whether every tile strictly between from and to is
// transparent. The end points themselves are not tested, so a tile always
// sees itself and its neighbours.
func lineOfSight(gmap *gamemap.GameMap, from, to gamemap.Position) bool {
	pts := Line(from, to)
	if len(pts) < 3 {
		return true
	}
	for _, p := range pts[1 : len(pts)-1] {
		if !gmap.IsTransparent(p) {
			return false
		}
	}
	return true
}

// CanSee reports whether an observer at from with the given radius sees to.
// It matches membership in ComputeFOV with FOVLineOfSight.
func CanSee(gmap *gamemap.GameMap, from, to gamemap.Position, radius int) bool {
	if !gmap.InBounds(from) || !gmap.InBounds(to) {
		return false
	}
	dx, dy := from.Delta(to)
	if dx*dx+dy*dy > radius*radius || radius < 0 {
		return false
	}
	return lineOfSight(gmap, from, to)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
