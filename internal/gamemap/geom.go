package gamemap

// Position is a tile coordinate on the map.
type Position struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Delta returns the offset from p to other.
func (p Position) Delta(other Position) (int, int) {
	return other.X - p.X, other.Y - p.Y
}

// Dimension is the width and height of an area in tiles.
type Dimension struct {
	Width  int `json:"width" yaml:"width" env:"WIDTH"`
	Height int `json:"height" yaml:"height" env:"HEIGHT"`
}

// Valid reports whether both sides are positive.
func (d Dimension) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Area returns Width*Height.
func (d Dimension) Area() int {
	return d.Width * d.Height
}

// Center returns the middle tile of the area.
func (d Dimension) Center() Position {
	return Position{X: d.Width / 2, Y: d.Height / 2}
}

// Contains reports whether p lies inside the area anchored at (0, 0).
func (d Dimension) Contains(p Position) bool {
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}
