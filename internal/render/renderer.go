package render

import (
	"ascii-roguelike/internal/gamemap"
	"ascii-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of rows reserved for the HUD at the bottom.
const HUDRows = 5

const (
	glyphPlayer = '@'
	glyphExit   = '>'
)

// Renderer draws a session onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(gamemap.Position{}, w, max(h-HUDRows, 1)),
		theme:  theme,
	}
}

// SetTheme replaces the palette.
func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// Theme returns the current palette.
func (r *Renderer) Theme() Theme { return r.theme }

// Resize refits the viewport to the screen after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 1)
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p gamemap.Position) { r.camera.Center(p) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(p gamemap.Position) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p)
}

// DrawFrame renders tiles, the exit, monsters and the player.
func (r *Renderer) DrawFrame(s *session.Session) {
	r.screen.Clear()
	r.CenterOn(s.Player())
	gmap := s.Map()
	r.drawMap(gmap)

	if exit, ok := s.Exit(); ok && gmap.At(exit).Seen {
		fg := r.theme.ExitFG
		if !gmap.At(exit).Visible {
			fg = r.theme.SeenFG
		}
		r.drawAt(exit, string(glyphExit), tcell.StyleDefault.Foreground(fg).Background(r.theme.Background))
	}

	// Only draw monsters on visible tiles.
	for _, m := range s.Monsters() {
		if !gmap.InBounds(m.Pos) || !gmap.At(m.Pos).Visible {
			continue
		}
		r.drawAt(m.Pos, string(m.Glyph), tcell.StyleDefault.Foreground(m.FG).Background(r.theme.Background))
	}

	r.drawAt(s.Player(), string(glyphPlayer),
		tcell.StyleDefault.Foreground(r.theme.PlayerFG).Background(r.theme.Background).Bold(true))
}

// drawMap renders all visible and seen tiles.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for i, tile := range gmap.Tiles {
		style, ok := Style(tile, r.theme)
		if !ok {
			continue
		}
		r.drawAt(gmap.PositionOf(i), string(tile.Glyph), style)
	}
}

func (r *Renderer) drawAt(p gamemap.Position, glyph string, style tcell.Style) {
	sx, sy, onScreen := r.camera.WorldToScreen(p)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
