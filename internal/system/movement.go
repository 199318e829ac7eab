package system

import (
	"fmt"
	"strings"

	"ascii-roguelike/internal/gamemap"
)

// Direction is one of the eight compass moves.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var directionNames = [...]string{"north", "south", "east", "west", "northeast", "northwest", "southeast", "southwest"}

var directionDeltas = [...][2]int{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {-1, -1}, {1, 1}, {-1, 1},
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the (dx, dy) step for d. Screen y grows downward.
func (d Direction) Delta() (int, int) {
	if int(d) >= len(directionDeltas) {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// ParseDirection accepts full names ("north"), short forms ("n", "ne")
// and the snake_case key names used by config ("up_left").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "east", "e", "right":
		return East, nil
	case "west", "w", "left":
		return West, nil
	case "northeast", "ne", "up_right":
		return NorthEast, nil
	case "northwest", "nw", "up_left":
		return NorthWest, nil
	case "southeast", "se", "down_right":
		return SouthEast, nil
	case "southwest", "sw", "down_left":
		return SouthWest, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or out-of-bounds
	MoveOccupied                   // a monster stands there
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOccupied:
		return "occupied"
	}
	return fmt.Sprintf("MoveResult(%d)", uint8(r))
}

// TryMove attempts to step from by (dx, dy) on gmap.
// It returns the outcome and the resulting position, which equals from
// unless the result is MoveOK.
func TryMove(gmap *gamemap.GameMap, blockers []gamemap.Position, from gamemap.Position, dx, dy int) (MoveResult, gamemap.Position) {
	next := from.Add(dx, dy)

	for _, b := range blockers {
		if b == next {
			return MoveOccupied, from
		}
	}

	if !gmap.IsWalkable(next) {
		return MoveBlocked, from
	}
	return MoveOK, next
}
