package generate

import (
	"ascii-roguelike/assets"
	"ascii-roguelike/internal/gamemap"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Def assets.MonsterDef
	Pos gamemap.Position
}

// Populate places monsters in the generated rooms.
//
// The first room (player start) and the last room (exit) stay empty. A
// monster only goes in rooms at least 3x3 and never on the outer ring, so a
// corridor crossing the room always has a way around it.
func Populate(gmap *gamemap.GameMap, cfg *Config) []MonsterSpawn {
	rooms := gmap.Rooms
	if len(rooms) <= 2 {
		return nil
	}
	defs := assets.MonstersForDepth(cfg.Depth)
	if len(defs) == 0 {
		return nil
	}

	var spawns []MonsterSpawn
	for _, room := range rooms[1 : len(rooms)-1] {
		if room.Width() < 3 || room.Height() < 3 {
			continue
		}
		if cfg.MonsterChance < 100 && cfg.Rand.Intn(100) >= cfg.MonsterChance {
			continue
		}
		def := defs[cfg.Rand.Intn(len(defs))]
		pos := gamemap.Position{
			X: room.X1 + 1 + cfg.Rand.Intn(room.Width()-2),
			Y: room.Y1 + 1 + cfg.Rand.Intn(room.Height()-2),
		}
		spawns = append(spawns, MonsterSpawn{Def: def, Pos: pos})
	}
	return spawns
}
