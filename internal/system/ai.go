package system

import (
	"fmt"

	"ascii-roguelike/assets"
	"ascii-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Monster is a stationary watcher placed by the populator.
type Monster struct {
	Name        string
	Glyph       rune
	FG          tcell.Color
	Pos         gamemap.Position
	SightRadius int
	Notice      string
	SeesPlayer  bool
}

// NewMonster builds a monster from its definition.
func NewMonster(def assets.MonsterDef, pos gamemap.Position) *Monster {
	return &Monster{
		Name:        def.Name,
		Glyph:       def.Glyph,
		FG:          def.Color,
		Pos:         pos,
		SightRadius: def.SightRadius,
		Notice:      def.Notice,
	}
}

// UpdateAwareness refreshes each monster's SeesPlayer flag and returns a
// notice for every monster that just spotted the player this turn.
func UpdateAwareness(gmap *gamemap.GameMap, monsters []*Monster, player gamemap.Position) []string {
	var msgs []string
	for _, m := range monsters {
		sees := CanSee(gmap, m.Pos, player, m.SightRadius)
		if sees && !m.SeesPlayer {
			msgs = append(msgs, m.noticeLine())
		}
		m.SeesPlayer = sees
	}
	return msgs
}

// Positions returns the tile of every monster, for use as move blockers.
func Positions(monsters []*Monster) []gamemap.Position {
	out := make([]gamemap.Position, len(monsters))
	for i, m := range monsters {
		out[i] = m.Pos
	}
	return out
}

func (m *Monster) noticeLine() string {
	if m.Notice == "" {
		return fmt.Sprintf("The %s sees you.", m.Name)
	}
	return fmt.Sprintf(m.Notice, m.Name)
}
