package render

import (
	"ascii-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours one renderer draws with.
// A VisibleFG of tcell.ColorDefault keeps each tile's own colour.
type Theme struct {
	VisibleFG  tcell.Color
	SeenFG     tcell.Color
	Background tcell.Color
	PlayerFG   tcell.Color
	ExitFG     tcell.Color
	TextFG     tcell.Color
	MessageFG  tcell.Color
}

// DepthThemes tints the visible terrain per depth. Index 0 is depth 1;
// deeper levels past the end reuse the last entry.
var DepthThemes = []Theme{
	{VisibleFG: tcell.ColorDefault},
	{VisibleFG: tcell.ColorCadetBlue},
	{VisibleFG: tcell.ColorDarkKhaki},
	{VisibleFG: tcell.ColorRosyBrown},
	{VisibleFG: tcell.ColorMediumPurple},
}

// DefaultTheme returns the palette used for depth 1.
func DefaultTheme() Theme {
	return ThemeFor(1)
}

// ThemeFor returns the theme for depth (1-based).
func ThemeFor(depth int) Theme {
	i := min(max(depth-1, 0), len(DepthThemes)-1)
	t := DepthThemes[i]
	t.SeenFG = tcell.ColorDimGray
	t.Background = tcell.ColorBlack
	t.PlayerFG = tcell.ColorWhite
	t.ExitFG = tcell.ColorGold
	t.TextFG = tcell.ColorWhite
	t.MessageFG = tcell.ColorLightYellow
	return t
}

// Style returns how tile is drawn: bright when visible, dim when only seen.
// The second result is false when the tile has never been seen.
func Style(tile gamemap.Tile, theme Theme) (tcell.Style, bool) {
	fg, ok := tileColor(tile, theme)
	if !ok {
		return tcell.StyleDefault, false
	}
	return tcell.StyleDefault.Foreground(fg).Background(theme.Background), true
}

func tileColor(tile gamemap.Tile, theme Theme) (tcell.Color, bool) {
	switch {
	case tile.Visible:
		if theme.VisibleFG != tcell.ColorDefault {
			return theme.VisibleFG, true
		}
		return tile.FG, true
	case tile.Seen:
		return theme.SeenFG, true
	}
	return tcell.ColorDefault, false
}
