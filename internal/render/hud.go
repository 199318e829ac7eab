package render

import (
	"fmt"

	"ascii-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s *session.Session) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Depth: %d  Turns: %d  Seen: %d  Seed: %d",
		s.Depth(), s.Turns(), s.TilesSeen(), s.LevelSeed())
	r.drawText(0, hudY+1, runewidth.Truncate(status, screenW, ""), tcell.StyleDefault.Foreground(r.theme.TextFG))

	// Message log (last 3 messages).
	messages := s.Messages()
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, runewidth.Truncate(msg, screenW, "…"), tcell.StyleDefault.Foreground(r.theme.MessageFG))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
