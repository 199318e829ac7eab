// Package ssh turns gliderlabs SSH sessions into tcell screens.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty is the tcell view of one SSH channel. Reads and writes go straight to
// the channel; the window size follows the client's window-change requests.
type Tty struct {
	io.ReadWriteCloser

	resizes <-chan gossh.Window
	follow  sync.Once

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
}

// NewTty wraps ch, starting at window win. resizes may be nil when the
// client never changes size.
func NewTty(ch io.ReadWriteCloser, win gossh.Window, resizes <-chan gossh.Window) *Tty {
	return &Tty{
		ReadWriteCloser: ch,
		resizes:         resizes,
		size:            windowSize(win),
	}
}

// Start, Stop and Drain do nothing: the channel is open for the whole
// handler and writes are not buffered.
func (t *Tty) Start() error { return nil }

func (t *Tty) Stop() error { return nil }

func (t *Tty) Drain() error { return nil }

func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets the function tcell calls after the window changes. The
// first call starts following window-change requests until the client
// closes them.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	if t.resizes == nil {
		return
	}
	t.follow.Do(func() {
		go func() {
			for win := range t.resizes {
				if cb := t.resize(win); cb != nil {
					cb()
				}
			}
		}()
	})
}

// resize records win and returns the callback to run outside the lock.
func (t *Tty) resize(win gossh.Window) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.size = windowSize(win)
	return t.onResize
}

func windowSize(win gossh.Window) tcell.WindowSize {
	return tcell.WindowSize{Width: win.Width, Height: win.Height}
}
