package generate

import (
	"fmt"
	"strings"

	"ascii-roguelike/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
)

func (s CorridorStyle) String() string {
	switch s {
	case CorridorZShaped:
		return "z-shaped"
	default:
		return "l-shaped"
	}
}

// ParseCorridorStyle maps a config name to a style. Empty means L-shaped.
func ParseCorridorStyle(name string) (CorridorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "l", "l-shaped":
		return CorridorLShaped, nil
	case "z", "z-shaped":
		return CorridorZShaped, nil
	}
	return 0, fmt.Errorf("unknown corridor style %q", name)
}

// carveCorridor digs a tunnel from a to b.
// L-shaped always runs horizontally along a's row first, then vertically
// along b's column.
func carveCorridor(gmap *gamemap.GameMap, a, b gamemap.Position, style CorridorStyle) {
	switch style {
	case CorridorZShaped:
		carveZShaped(gmap, a, b)
	default:
		carveH(gmap, a.X, b.X, a.Y)
		carveV(gmap, a.Y, b.Y, b.X)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if p := (gamemap.Position{X: x, Y: y}); gmap.InBounds(p) {
			gmap.Set(p, gamemap.MakeFloor())
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if p := (gamemap.Position{X: x, Y: y}); gmap.InBounds(p) {
			gmap.Set(p, gamemap.MakeFloor())
		}
	}
}

func carveZShaped(gmap *gamemap.GameMap, a, b gamemap.Position) {
	midY := (a.Y + b.Y) / 2
	carveV(gmap, a.Y, midY, a.X)
	carveH(gmap, a.X, b.X, midY)
	carveV(gmap, midY, b.Y, b.X)
}
