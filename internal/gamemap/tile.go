package gamemap

import "github.com/gdamore/tcell/v2"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	default:
		return "wall"
	}
}

// Tile holds render data and visibility state for one map cell.
// Seen is never cleared once set for the lifetime of a map.
type Tile struct {
	Kind    TileKind
	Glyph   rune
	FG, BG  tcell.Color
	Visible bool
	Seen    bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Glyph: '#', FG: tcell.ColorSeaGreen, BG: tcell.ColorBlack}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Glyph: '.', FG: tcell.ColorSeaGreen, BG: tcell.ColorBlack}
}

// Walkable reports whether an entity may stand on the tile.
func (t Tile) Walkable() bool { return t.Kind == TileFloor }

// Transparent reports whether light passes through the tile.
func (t Tile) Transparent() bool { return t.Kind == TileFloor }
