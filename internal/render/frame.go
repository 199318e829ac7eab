package render

import (
	"fmt"

	"ascii-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Cell states in a Frame.
const (
	StateVisible = "visible"
	StateSeen    = "seen"
	StateHidden  = "hidden"
)

// Point is a JSON-friendly map position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is one tile of a Frame.
type Cell struct {
	Glyph string `json:"glyph"`
	FG    string `json:"fg,omitempty"`
	State string `json:"state"`
}

// Frame is a render-ready copy of a session for remote clients.
// Cells are row-major, Width*Height long.
type Frame struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Cells    []Cell   `json:"cells"`
	Player   Point    `json:"player"`
	Depth    int      `json:"depth"`
	Turns    int      `json:"turns"`
	Seen     int      `json:"seen"`
	Messages []string `json:"messages"`
}

// frameMessages is how many recent messages a Frame carries.
const frameMessages = 5

// Snapshot captures what the player currently knows about the level.
func Snapshot(s *session.Session, theme Theme) Frame {
	gmap := s.Map()
	f := Frame{
		Width:  gmap.Width,
		Height: gmap.Height,
		Cells:  make([]Cell, len(gmap.Tiles)),
		Player: Point{X: s.Player().X, Y: s.Player().Y},
		Depth:  s.Depth(),
		Turns:  s.Turns(),
		Seen:   s.TilesSeen(),
	}

	for i, tile := range gmap.Tiles {
		fg, ok := tileColor(tile, theme)
		if !ok {
			f.Cells[i] = Cell{Glyph: " ", State: StateHidden}
			continue
		}
		state := StateSeen
		if tile.Visible {
			state = StateVisible
		}
		f.Cells[i] = Cell{Glyph: string(tile.Glyph), FG: hex(fg), State: state}
	}

	if exit, ok := s.Exit(); ok {
		c := &f.Cells[gmap.Index(exit)]
		if c.State != StateHidden {
			c.Glyph = string(glyphExit)
			if c.State == StateVisible {
				c.FG = hex(theme.ExitFG)
			}
		}
	}
	for _, m := range s.Monsters() {
		if !gmap.InBounds(m.Pos) || !gmap.At(m.Pos).Visible {
			continue
		}
		f.Cells[gmap.Index(m.Pos)] = Cell{Glyph: string(m.Glyph), FG: hex(m.FG), State: StateVisible}
	}
	f.Cells[gmap.Index(s.Player())] = Cell{Glyph: string(glyphPlayer), FG: hex(theme.PlayerFG), State: StateVisible}

	msgs := s.Messages()
	f.Messages = append([]string(nil), msgs[max(len(msgs)-frameMessages, 0):]...)
	return f
}

// hex formats c as #rrggbb, or "" for the terminal default.
func hex(c tcell.Color) string {
	v := c.Hex()
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", v)
}
