package system

import (
	"fmt"
	"strings"

	"ascii-roguelike/internal/gamemap"
)

// FOVAlgorithm selects how visibility is computed.
type FOVAlgorithm uint8

const (
	// FOVLineOfSight traces a Bresenham line from the observer to every tile
	// in range. A tile is visible when no opaque tile lies strictly between.
	FOVLineOfSight FOVAlgorithm = iota
	// FOVShadowcast uses recursive shadowcasting over eight octants. It is
	// more permissive than FOVLineOfSight: a tile may be lit through a gap
	// even when a wall lies on its Bresenham line, and CanSee does not
	// agree with it. Monster awareness always uses line of sight.
	FOVShadowcast
)

func (a FOVAlgorithm) String() string {
	switch a {
	case FOVShadowcast:
		return "shadowcast"
	default:
		return "line-of-sight"
	}
}

// ParseFOVAlgorithm maps a config name to an algorithm. Empty means line of sight.
func ParseFOVAlgorithm(name string) (FOVAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "line-of-sight", "los":
		return FOVLineOfSight, nil
	case "shadowcast", "shadowcasting":
		return FOVShadowcast, nil
	}
	return 0, fmt.Errorf("unknown fov algorithm %q", name)
}

// ComputeFOV returns the sorted indices of every tile visible from origin.
// Tiles count as in range when dx²+dy² <= radius². A negative radius is
// treated as zero. The map is not modified.
func ComputeFOV(gmap *gamemap.GameMap, origin gamemap.Position, radius int, alg FOVAlgorithm) ([]int, error) {
	if !gmap.InBounds(origin) {
		return nil, fmt.Errorf("fov from (%d,%d) on %dx%d map: %w",
			origin.X, origin.Y, gmap.Width, gmap.Height, gamemap.ErrOutOfBounds)
	}
	radius = max(radius, 0)

	if alg == FOVShadowcast {
		return shadowcast(gmap, origin, radius), nil
	}

	var out []int
	r2 := radius * radius
	for y := max(0, origin.Y-radius); y <= min(gmap.Height-1, origin.Y+radius); y++ {
		for x := max(0, origin.X-radius); x <= min(gmap.Width-1, origin.X+radius); x++ {
			dx, dy := x-origin.X, y-origin.Y
			if dx*dx+dy*dy > r2 {
				continue
			}
			target := gamemap.Position{X: x, Y: y}
			if lineOfSight(gmap, origin, target) {
				out = append(out, gmap.Index(target))
			}
		}
	}
	return out, nil
}

// Tracker keeps one observer's field of view on a map up to date.
type Tracker struct {
	Radius    int
	Algorithm FOVAlgorithm
	visible   []int
}

// NewTracker creates a tracker with the given sight radius.
func NewTracker(radius int, alg FOVAlgorithm) *Tracker {
	return &Tracker{Radius: radius, Algorithm: alg}
}

// Update recomputes visibility from origin. Previously visible tiles are
// cleared, the new set is marked Visible and Seen. Seen is never unset.
// On error the map is left untouched.
func (t *Tracker) Update(gmap *gamemap.GameMap, origin gamemap.Position) ([]int, error) {
	vis, err := ComputeFOV(gmap, origin, t.Radius, t.Algorithm)
	if err != nil {
		return nil, err
	}
	gmap.ResetVisible()
	for _, i := range vis {
		tile := &gmap.Tiles[i]
		tile.Visible = true
		tile.Seen = true
	}
	t.visible = vis
	return vis, nil
}

// Visible returns the indices lit by the last successful Update.
func (t *Tracker) Visible() []int {
	return t.visible
}

// Contains reports whether the tile at p was lit by the last Update.
func (t *Tracker) Contains(gmap *gamemap.GameMap, p gamemap.Position) bool {
	if !gmap.InBounds(p) {
		return false
	}
	return gmap.At(p).Visible
}
