// Package game is the terminal front end: it drives a session from tcell
// key events and draws it after every action.
package game

import (
	"fmt"
	"io"
	"log"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/render"
	"ascii-roguelike/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Game beyond its settings document.
type Options struct {
	// RecordRuns appends a run summary to the local run log on quit.
	RecordRuns bool
	// Reload delivers new configurations, e.g. from a file watcher.
	Reload <-chan config.Config
	Logger *log.Logger
}

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *session.Session
	bindings Bindings
	opts     Options
	logger   *log.Logger
	done     chan struct{}
}

// reloadEvent carries a new configuration into the event loop.
type reloadEvent struct {
	tcell.EventTime
	cfg config.Config
}

// New creates a Game on an initialised screen.
func New(screen tcell.Screen, cfg config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	bindings, err := NewBindings(cfg.Input)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, render.ThemeFor(sess.Depth())),
		session:  sess,
		bindings: bindings,
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Session exposes the running session.
func (g *Game) Session() *session.Session { return g.session }

// Run is the main game loop. It returns when the player quits or the
// screen stops delivering events. The caller owns the screen.
func (g *Game) Run() {
	defer close(g.done)
	if g.opts.Reload != nil {
		go g.forwardReloads()
	}

	g.draw()
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if !g.HandleEvent(ev) {
			if g.opts.RecordRuns {
				saveRunLog(runLogFor(g.session))
			}
			return
		}
	}
}

// forwardReloads posts each configuration from opts.Reload to the event loop.
func (g *Game) forwardReloads() {
	for {
		select {
		case cfg, ok := <-g.opts.Reload:
			if !ok {
				return
			}
			ev := &reloadEvent{cfg: cfg}
			ev.SetEventNow()
			if err := g.screen.PostEvent(ev); err != nil {
				g.logger.Printf("post reload: %v", err)
			}
		case <-g.done:
			return
		}
	}
}

// HandleEvent processes one screen event and redraws. It returns false
// once the session has ended.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		action := g.bindings.Action(ev)
		if action == session.ActionNone {
			return true
		}
		out, err := g.session.Apply(action)
		if err != nil {
			g.logger.Printf("apply %v: %v", action, err)
		}
		if out.Quit {
			return false
		}
		if out.Descended {
			g.renderer.SetTheme(render.ThemeFor(g.session.Depth()))
		}
	case *reloadEvent:
		g.applyReload(ev.cfg)
	}
	g.draw()
	return true
}

func (g *Game) applyReload(cfg config.Config) {
	bindings, err := NewBindings(cfg.Input)
	if err != nil {
		g.logger.Printf("reload: %v", err)
		return
	}
	if err := g.session.Reload(cfg); err != nil {
		g.logger.Printf("reload: %v", err)
		return
	}
	g.bindings = bindings
	g.renderer.SetTheme(render.ThemeFor(g.session.Depth()))
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.session)
	g.renderer.DrawHUD(g.session)
}
