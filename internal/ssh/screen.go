package ssh

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned when the client did not request a terminal.
var ErrNoPTY = errors.New("ssh: session has no pty")

// termMu protects os.Setenv("TERM") around screen creation; terminfo is
// looked up from the process environment.
var termMu sync.Mutex

// NewScreen builds and initialises a tcell screen for s using the given
// terminal type. The caller must call Fini on the returned screen.
func NewScreen(s gossh.Session, term string) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}

	tty := NewTty(s, pty.Window, winCh)
	termMu.Lock()
	prev, hadPrev := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if hadPrev {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
