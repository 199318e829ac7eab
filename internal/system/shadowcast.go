package system

import "ascii-roguelike/internal/gamemap"

// octant rotates a canonical sweep into one eighth of the map. The sweep
// works in (col, row) with row = -distance and col running from -distance
// up to 0.
type octant struct {
	xx, xy, yx, yy int
}

func (o octant) at(origin gamemap.Position, col, row int) gamemap.Position {
	return gamemap.Position{
		X: origin.X + col*o.xx + row*o.xy,
		Y: origin.Y + col*o.yx + row*o.yy,
	}
}

var octants = [8]octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// shadowcaster holds the state of one shadowcast pass.
type shadowcaster struct {
	gmap   *gamemap.GameMap
	origin gamemap.Position
	radius int
	lit    []bool
}

// shadowcast returns the sorted indices lit from origin.
func shadowcast(gmap *gamemap.GameMap, origin gamemap.Position, radius int) []int {
	sc := &shadowcaster{
		gmap:   gmap,
		origin: origin,
		radius: radius,
		lit:    make([]bool, len(gmap.Tiles)),
	}
	sc.lit[gmap.Index(origin)] = true
	for _, o := range octants {
		sc.scan(o, 1, 1.0, 0.0)
	}

	var out []int
	for i, ok := range sc.lit {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// scan lights the part of octant o between slopes start (high) and end
// (low), beginning at distance first. An opaque run splits the window: the
// slice above it is scanned further out by a recursive call, the sweep
// resumes below it.
func (sc *shadowcaster) scan(o octant, first int, start, end float64) {
	if start < end {
		return
	}
	resume := start

	for dist := first; dist <= sc.radius; dist++ {
		row := -dist
		inShadow := false

		for col := -dist; col <= 0; col++ {
			// Slopes through the cell's two far corners.
			high := (float64(col) - 0.5) / (float64(row) + 0.5)
			low := (float64(col) + 0.5) / (float64(row) - 0.5)
			if start < low {
				continue
			}
			if end > high {
				break
			}

			p := o.at(sc.origin, col, row)
			if col*col+row*row <= sc.radius*sc.radius && sc.gmap.InBounds(p) {
				sc.lit[sc.gmap.Index(p)] = true
			}
			opaque := !sc.gmap.IsTransparent(p)

			switch {
			case inShadow && opaque:
				resume = low
			case inShadow:
				inShadow = false
				start = resume
			case opaque && dist < sc.radius:
				inShadow = true
				sc.scan(o, dist+1, start, high)
				resume = low
			}
		}
		if inShadow {
			return
		}
	}
}
