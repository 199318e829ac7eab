package gamemap

import (
	"fmt"
	"strings"
)

// Rect is an axis-aligned rectangle used for rooms. Corners are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle covering size tiles starting at origin.
func NewRect(origin Position, size Dimension) Rect {
	return Rect{
		X1: origin.X,
		Y1: origin.Y,
		X2: origin.X + size.Width - 1,
		Y2: origin.Y + size.Height - 1,
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Padded returns r grown by n tiles on every side.
func (r Rect) Padded(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// GameMap holds the tile grid and room list for one dungeon level.
// Tiles are stored row-major: index = y*Width + x.
type GameMap struct {
	Dimension
	Tiles []Tile
	Rooms []Rect
}

// New creates a GameMap filled with walls.
func New(dim Dimension) (*GameMap, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("new map %dx%d: %w", dim.Width, dim.Height, ErrInvalidDimension)
	}
	tiles := make([]Tile, dim.Area())
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &GameMap{Dimension: dim, Tiles: tiles}, nil
}

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p Position) bool {
	return m.Contains(p)
}

// Index converts p to its offset in Tiles. p must be in bounds.
func (m *GameMap) Index(p Position) int {
	return p.Y*m.Width + p.X
}

// PositionOf converts a tile index back to a position.
func (m *GameMap) PositionOf(i int) Position {
	return Position{X: i % m.Width, Y: i / m.Width}
}

// At returns a pointer to the tile at p. Panics if out of bounds.
func (m *GameMap) At(p Position) *Tile {
	return &m.Tiles[m.Index(p)]
}

// Set replaces the tile at p, keeping its visibility flags.
func (m *GameMap) Set(p Position, t Tile) {
	old := m.At(p)
	t.Visible, t.Seen = old.Visible, old.Seen
	*old = t
}

// IsWalkable returns true when p is in bounds and walkable.
func (m *GameMap) IsWalkable(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.At(p).Walkable()
}

// IsTransparent returns true when p is in bounds and transparent.
func (m *GameMap) IsTransparent(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.At(p).Transparent()
}

// ResetVisible clears the Visible flag on every tile.
func (m *GameMap) ResetVisible() {
	for i := range m.Tiles {
		m.Tiles[i].Visible = false
	}
}

// VisibleIndices returns the indices of all currently visible tiles in order.
func (m *GameMap) VisibleIndices() []int {
	var out []int
	for i, t := range m.Tiles {
		if t.Visible {
			out = append(out, i)
		}
	}
	return out
}

// SeenIndices returns the indices of all tiles ever seen in order.
func (m *GameMap) SeenIndices() []int {
	var out []int
	for i, t := range m.Tiles {
		if t.Seen {
			out = append(out, i)
		}
	}
	return out
}

// String draws the map one glyph per tile, ignoring visibility.
func (m *GameMap) String() string {
	var b strings.Builder
	b.Grow(m.Area() + m.Height)
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			b.WriteRune(m.Tiles[y*m.Width+x].Glyph)
		}
	}
	return b.String()
}
