package ssh

import (
	"bytes"
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession implements the parts of gossh.Session the Tty touches.
type fakeSession struct {
	gossh.Session
	in     bytes.Buffer
	out    bytes.Buffer
	closed bool
	pty    *gossh.Pty
	winCh  chan gossh.Window
}

func (f *fakeSession) Read(b []byte) (int, error) { return f.in.Read(b) }
func (f *fakeSession) Write(b []byte) (int, error) { return f.out.Write(b) }
func (f *fakeSession) Close() error { f.closed = true; return nil }
func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	if f.pty == nil {
		return gossh.Pty{}, nil, false
	}
	return *f.pty, f.winCh, true
}

func TestTtyPassesThroughIO(t *testing.T) {
	s := &fakeSession{}
	s.in.WriteString("k")
	tty := NewTty(s, gossh.Window{Width: 80, Height: 24}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "k" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("@")); err != nil || s.out.String() != "@" {
		t.Fatalf("Write forwarded %q, %v", s.out.String(), err)
	}
	if err := tty.Close(); err != nil || !s.closed {
		t.Fatal("Close should close the session")
	}
}

func TestTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewTty(&fakeSession{}, gossh.Window{Width: 80, Height: 24}, winCh)

	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v, %v", ws, err)
	}

	called := make(chan struct{}, 1)
	tty.NotifyResize(func() { called <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Fatalf("size after resize = %+v", ws)
	}
	close(winCh)
}

func TestTtyWithoutResizes(t *testing.T) {
	tty := NewTty(&fakeSession{}, gossh.Window{Width: 100, Height: 30}, nil)
	tty.NotifyResize(func() { t.Error("callback without a resize") })
	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 100 || ws.Height != 30 {
		t.Fatalf("size = %+v, %v", ws, err)
	}
}

func TestNewScreenRequiresPTY(t *testing.T) {
	if _, err := NewScreen(&fakeSession{}, "xterm"); !errors.Is(err, ErrNoPTY) {
		t.Fatalf("err = %v; want ErrNoPTY", err)
	}
}
