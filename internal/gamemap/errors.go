package gamemap

import "errors"

var (
	// ErrInvalidDimension is returned when a map width or height is not positive.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidRoomBounds is returned when room size limits cannot fit the map.
	ErrInvalidRoomBounds = errors.New("invalid room bounds")
	// ErrInvalidRoomCount is returned when fewer than one room may be placed.
	ErrInvalidRoomCount = errors.New("invalid room count")
	// ErrOutOfBounds is returned when a position lies outside the map.
	ErrOutOfBounds = errors.New("position out of bounds")
)
