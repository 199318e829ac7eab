package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"ascii-roguelike/internal/gamemap"
)

// Config drives procedural generation for one level.
type Config struct {
	gamemap.Dimension
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	Depth         int
	MonsterChance int // 0–100, per eligible room
	Rand          *rand.Rand
}

// Validate reports configuration errors before any tile is allocated.
func (cfg *Config) Validate() error {
	if !cfg.Dimension.Valid() {
		return fmt.Errorf("generate: map %dx%d: %w", cfg.Width, cfg.Height, gamemap.ErrInvalidDimension)
	}
	if cfg.MinRoomSize < 1 {
		return fmt.Errorf("generate: min room size %d: %w", cfg.MinRoomSize, gamemap.ErrInvalidRoomBounds)
	}
	if cfg.MinRoomSize > cfg.MaxRoomSize {
		return fmt.Errorf("generate: min room size %d > max %d: %w",
			cfg.MinRoomSize, cfg.MaxRoomSize, gamemap.ErrInvalidRoomBounds)
	}
	if cfg.MaxRoomSize > cfg.Width || cfg.MaxRoomSize > cfg.Height {
		return fmt.Errorf("generate: max room size %d exceeds map %dx%d: %w",
			cfg.MaxRoomSize, cfg.Width, cfg.Height, gamemap.ErrInvalidRoomBounds)
	}
	if cfg.MaxRooms < 1 {
		return fmt.Errorf("generate: max rooms %d: %w", cfg.MaxRooms, gamemap.ErrInvalidRoomCount)
	}
	if cfg.Rand == nil {
		return errors.New("generate: nil Rand")
	}
	return nil
}

// Generate places up to cfg.MaxRooms non-overlapping rooms, joins each new
// room to the previously accepted one, and returns the map plus the player
// start (center of the first room).
//
// Draw order per attempt is width, height, x, y so a fixed seed always
// yields the same map.
func Generate(cfg *Config) (*gamemap.GameMap, gamemap.Position, error) {
	if err := cfg.Validate(); err != nil {
		return nil, gamemap.Position{}, err
	}
	gmap, err := gamemap.New(cfg.Dimension)
	if err != nil {
		return nil, gamemap.Position{}, err
	}
	pad := max(cfg.RoomPadding, 0)
	span := cfg.MaxRoomSize - cfg.MinRoomSize + 1

	for range cfg.MaxRooms {
		size := gamemap.Dimension{
			Width:  cfg.MinRoomSize + cfg.Rand.Intn(span),
			Height: cfg.MinRoomSize + cfg.Rand.Intn(span),
		}
		origin := gamemap.Position{
			X: cfg.Rand.Intn(cfg.Width - size.Width + 1),
			Y: cfg.Rand.Intn(cfg.Height - size.Height + 1),
		}
		room := gamemap.NewRect(origin, size)
		if overlapsAny(room.Padded(pad), gmap.Rooms) {
			continue
		}

		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			carveCorridor(gmap, gmap.Rooms[n-1].Center(), room.Center(), cfg.CorridorStyle)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}

	// The first attempt can never collide, so there is always a room.
	return gmap, gmap.Rooms[0].Center(), nil
}

// Exit returns the center of the last room when the map has at least two.
func Exit(gmap *gamemap.GameMap) (gamemap.Position, bool) {
	if len(gmap.Rooms) < 2 {
		return gamemap.Position{}, false
	}
	return gmap.Rooms[len(gmap.Rooms)-1].Center(), true
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns every tile of room into floor.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(gamemap.Position{X: x, Y: y}, gamemap.MakeFloor())
		}
	}
}
