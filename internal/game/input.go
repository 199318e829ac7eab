package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Bindings maps key events to session actions.
type Bindings struct {
	runes map[rune]session.Action
	keys  map[tcell.Key]session.Action
}

// keyByName indexes tcell's key names case-insensitively ("esc", "enter").
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// NewBindings builds bindings from the input section of the config.
// Arrow keys always move in the four cardinal directions and Ctrl-C
// always quits.
func NewBindings(in config.Input) (Bindings, error) {
	b := Bindings{
		runes: make(map[rune]session.Action),
		keys: map[tcell.Key]session.Action{
			tcell.KeyUp:    session.ActionMoveN,
			tcell.KeyDown:  session.ActionMoveS,
			tcell.KeyRight: session.ActionMoveE,
			tcell.KeyLeft:  session.ActionMoveW,
			tcell.KeyCtrlC: session.ActionQuit,
		},
	}
	entries := []struct {
		name   string
		key    string
		action session.Action
	}{
		{"up", in.Up, session.ActionMoveN},
		{"down", in.Down, session.ActionMoveS},
		{"left", in.Left, session.ActionMoveW},
		{"right", in.Right, session.ActionMoveE},
		{"up_left", in.UpLeft, session.ActionMoveNW},
		{"up_right", in.UpRight, session.ActionMoveNE},
		{"down_left", in.DownLeft, session.ActionMoveSW},
		{"down_right", in.DownRight, session.ActionMoveSE},
		{"wait", in.Wait, session.ActionWait},
		{"descend", in.Descend, session.ActionDescend},
		{"cancel", in.Cancel, session.ActionQuit},
	}
	for _, e := range entries {
		if e.key == "" {
			continue
		}
		if err := b.bind(e.key, e.action); err != nil {
			return Bindings{}, fmt.Errorf("input %s: %w", e.name, err)
		}
	}

	// Letters also answer to the other case unless that is bound elsewhere.
	bound := make(map[rune]session.Action, len(b.runes))
	for r, a := range b.runes {
		bound[r] = a
	}
	for r, a := range bound {
		for _, alt := range []rune{unicode.ToUpper(r), unicode.ToLower(r)} {
			if _, taken := bound[alt]; !taken {
				b.runes[alt] = a
			}
		}
	}
	return b, nil
}

func (b *Bindings) bind(name string, a session.Action) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if prev, ok := b.runes[r]; ok && prev != a {
			return fmt.Errorf("key %q already bound to %v", name, prev)
		}
		b.runes[r] = a
		return nil
	}
	k, ok := keyByName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown key name %q", name)
	}
	if prev, ok := b.keys[k]; ok && prev != a {
		return fmt.Errorf("key %q already bound to %v", name, prev)
	}
	b.keys[k] = a
	return nil
}

// Action maps a tcell key event to a session action.
func (b Bindings) Action(ev *tcell.EventKey) session.Action {
	if ev.Key() == tcell.KeyRune {
		return b.runes[ev.Rune()]
	}
	return b.keys[ev.Key()]
}
