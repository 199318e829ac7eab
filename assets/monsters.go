package assets

import "github.com/gdamore/tcell/v2"

// MonsterDef describes one monster kind that may be placed in a room.
type MonsterDef struct {
	Name        string
	Glyph       rune
	Color       tcell.Color
	SightRadius int
	Notice      string // printed once per sighting; %s is the monster name
	MinDepth    int
}

// Monsters is ordered by MinDepth.
var Monsters = []MonsterDef{
	{Name: "Mended", Glyph: 'm', Color: tcell.ColorIndianRed, SightRadius: 6,
		Notice: "The %s gurgles and shifts at your presence.", MinDepth: 1},
	{Name: "Husk", Glyph: 'h', Color: tcell.ColorTan, SightRadius: 5,
		Notice: "The %s turns its hollow face toward you.", MinDepth: 1},
	{Name: "Lantern Eel", Glyph: 'e', Color: tcell.ColorAqua, SightRadius: 9,
		Notice: "A %s flickers brighter as it sees you.", MinDepth: 2},
	{Name: "Stitched Hound", Glyph: 'd', Color: tcell.ColorOrange, SightRadius: 8,
		Notice: "The %s raises its head and sniffs the air.", MinDepth: 3},
	{Name: "Warden", Glyph: 'W', Color: tcell.ColorFuchsia, SightRadius: 10,
		Notice: "The %s fixes you with a lidless stare.", MinDepth: 5},
}

// MonstersForDepth returns every definition that may appear at depth.
// Depth 1 and below always yields the starting set.
func MonstersForDepth(depth int) []MonsterDef {
	if depth < 1 {
		depth = 1
	}
	var out []MonsterDef
	for _, m := range Monsters {
		if m.MinDepth <= depth {
			out = append(out, m)
		}
	}
	return out
}
