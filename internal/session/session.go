// Package session runs one player's game: the current level, the player,
// the monsters and the message log. Every front end drives a Session.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"ascii-roguelike/assets"
	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/gamemap"
	"ascii-roguelike/internal/generate"
	"ascii-roguelike/internal/system"
)

const maxMessages = 50

var (
	// ErrUnknownAction is returned for actions Apply does not handle.
	ErrUnknownAction = errors.New("session: unknown action")
	// ErrEnded is returned by Apply after the player quit.
	ErrEnded = errors.New("session: ended")
)

// TurnState tracks whose move it is.
type TurnState uint8

const (
	TurnPlayer TurnState = iota
	TurnNPC
	TurnEnded
)

// Outcome reports what one Apply call did.
type Outcome struct {
	Action    Action
	Result    system.MoveResult // only set for moves
	Moved     bool
	Descended bool
	Quit      bool
	Messages  []string // added during this call
}

// Session owns one level at a time. It is not safe for concurrent use.
type Session struct {
	cfg    config.Config
	logger *log.Logger
	rng    *rand.Rand

	seed      int64
	levelSeed int64
	depth     int

	gmap     *gamemap.GameMap
	player   gamemap.Position
	exit     gamemap.Position
	hasExit  bool
	monsters []*system.Monster
	tracker  *system.Tracker

	turn      TurnState
	turns     int
	seenPrior int
	messages  []string
	pending   []string
}

// New validates cfg, generates depth 1 and runs the first FOV pass.
// A nil logger discards log output.
func New(cfg config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg, err := cfg.FOV.ParsedAlgorithm()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := time.Now().UnixNano()
	if cfg.Level.Seed != nil {
		seed = *cfg.Level.Seed
	}
	s := &Session{
		cfg:     cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		tracker: system.NewTracker(cfg.FOV.Radius, alg),
	}
	if err := s.loadLevel(1, seed); err != nil {
		return nil, err
	}
	return s, nil
}

// generateLevel builds a level; tests swap it to force failures.
var generateLevel = generate.Generate

// loadLevel generates and populates depth from seed.
func (s *Session) loadLevel(depth int, seed int64) error {
	gen, err := levelConfig(s.cfg.Level, depth, seed)
	if err != nil {
		return err
	}
	gmap, spawn, err := generateLevel(gen)
	if err != nil {
		return fmt.Errorf("generate depth %d: %w", depth, err)
	}
	if _, err := s.tracker.Update(gmap, spawn); err != nil {
		return fmt.Errorf("fov at spawn: %w", err)
	}

	// Regenerating the current depth replaces its seen tiles; only a
	// finished level adds to the run total.
	if s.gmap != nil && depth != s.depth {
		s.seenPrior += len(s.gmap.SeenIndices())
	}
	s.gmap = gmap
	s.player = spawn
	s.exit, s.hasExit = generate.Exit(gmap)
	s.depth = depth
	s.levelSeed = seed

	var monsters []*system.Monster
	for _, sp := range generate.Populate(gmap, gen) {
		monsters = append(monsters, system.NewMonster(sp.Def, sp.Pos))
	}
	s.monsters = monsters
	s.logger.Printf("level %d: seed=%d rooms=%d monsters=%d", depth, seed, len(gmap.Rooms), len(s.monsters))

	if depth == 1 {
		s.addMessage("You enter the dungeon.")
	} else {
		s.addMessage(fmt.Sprintf("You descend to depth %d.", depth))
	}
	if lore := assets.LoreFor(depth); len(lore) > 0 {
		s.addMessage(lore[s.rng.Intn(len(lore))])
	}
	for _, msg := range system.UpdateAwareness(gmap, s.monsters, spawn) {
		s.addMessage(msg)
	}
	return nil
}

// Apply performs one player action.
func (s *Session) Apply(a Action) (Outcome, error) {
	if s.turn == TurnEnded {
		return Outcome{Action: a}, ErrEnded
	}
	s.pending = nil
	out := Outcome{Action: a}

	switch a {
	case ActionNone:
	case ActionWait:
		s.addMessage("You wait.")
		s.endTurn()

	case ActionDescend:
		if !s.hasExit || s.player != s.exit {
			s.addMessage("There are no stairs down here.")
			break
		}
		if s.depth >= MaxDepth {
			s.addMessage("There is nowhere further to descend.")
			break
		}
		if err := s.loadLevel(s.depth+1, s.rng.Int63()); err != nil {
			s.logger.Printf("descend: %v", err)
			return s.outcome(out), err
		}
		out.Descended = true

	case ActionQuit:
		s.turn = TurnEnded
		out.Quit = true

	default:
		dir, ok := a.Direction()
		if !ok {
			return s.outcome(out), fmt.Errorf("%w: %v", ErrUnknownAction, a)
		}
		if err := s.move(dir, &out); err != nil {
			return s.outcome(out), err
		}
	}
	return s.outcome(out), nil
}

func (s *Session) move(dir system.Direction, out *Outcome) error {
	dx, dy := dir.Delta()
	target := s.player.Add(dx, dy)
	res, next := system.TryMove(s.gmap, system.Positions(s.monsters), s.player, dx, dy)
	out.Result = res

	switch res {
	case system.MoveOK:
		prev := s.player
		s.player = next
		if _, err := s.tracker.Update(s.gmap, next); err != nil {
			s.logger.Printf("fov at %v: %v", next, err)
			s.player = prev
			return err
		}
		out.Moved = true
		s.endTurn()
	case system.MoveOccupied:
		if m := s.monsterAt(target); m != nil {
			s.addMessage(fmt.Sprintf("The %s blocks your way.", m.Name))
		}
	case system.MoveBlocked:
		// no message for walking into walls
	}
	return nil
}

// endTurn hands control to the monsters and back.
func (s *Session) endTurn() {
	s.turns++
	s.turn = TurnNPC
	for _, msg := range system.UpdateAwareness(s.gmap, s.monsters, s.player) {
		s.addMessage(msg)
	}
	s.turn = TurnPlayer
}

// Reload swaps in a new configuration and regenerates the current depth.
// The level seed comes from cfg when set, otherwise from the session RNG.
func (s *Session) Reload(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	alg, err := cfg.FOV.ParsedAlgorithm()
	if err != nil {
		return err
	}
	seed := s.rng.Int63()
	if cfg.Level.Seed != nil {
		seed = *cfg.Level.Seed
	}
	prevCfg, prevTracker := s.cfg, *s.tracker
	s.cfg = cfg
	s.tracker.Radius = cfg.FOV.Radius
	s.tracker.Algorithm = alg
	s.pending = nil
	if err := s.loadLevel(s.depth, seed); err != nil {
		s.cfg, *s.tracker = prevCfg, prevTracker
		return err
	}
	s.addMessage("Configuration reloaded.")
	return nil
}

func (s *Session) outcome(out Outcome) Outcome {
	out.Messages = s.pending
	return out
}

func (s *Session) monsterAt(p gamemap.Position) *system.Monster {
	for _, m := range s.monsters {
		if m.Pos == p {
			return m
		}
	}
	return nil
}

func (s *Session) addMessage(msg string) {
	s.pending = append(s.pending, msg)
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// Map returns the current level.
func (s *Session) Map() *gamemap.GameMap { return s.gmap }

// Player returns the player's tile.
func (s *Session) Player() gamemap.Position { return s.player }

// Exit returns the exit tile, if the level has one.
func (s *Session) Exit() (gamemap.Position, bool) { return s.exit, s.hasExit }

// Monsters returns the monsters on the current level.
func (s *Session) Monsters() []*system.Monster { return s.monsters }

// MonsterAt returns the monster standing on p, or nil.
func (s *Session) MonsterAt(p gamemap.Position) *system.Monster { return s.monsterAt(p) }

func (s *Session) Depth() int { return s.depth }
func (s *Session) Turns() int { return s.turns }
func (s *Session) Turn() TurnState { return s.turn }
func (s *Session) Seed() int64 { return s.seed }
func (s *Session) LevelSeed() int64 { return s.levelSeed }
func (s *Session) FOVRadius() int { return s.tracker.Radius }
func (s *Session) Visible() []int { return s.tracker.Visible() }
func (s *Session) Messages() []string { return s.messages }

// TilesSeen counts tiles seen on every level visited so far.
func (s *Session) TilesSeen() int {
	return s.seenPrior + len(s.gmap.SeenIndices())
}
