// Package config loads the game's settings document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"ascii-roguelike/internal/gamemap"
	"ascii-roguelike/internal/generate"
	"ascii-roguelike/internal/storage"
	"ascii-roguelike/internal/system"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultKey is the store key the terminal game reads.
const DefaultKey = "config.json"

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ROGUE_"

// Config is the whole settings document.
type Config struct {
	Level Level `json:"level" yaml:"level" envPrefix:"LEVEL_"`
	FOV   FOV   `json:"fov" yaml:"fov" envPrefix:"FOV_"`
	Input Input `json:"input" yaml:"input" envPrefix:"INPUT_"`
}

// Level controls map generation.
type Level struct {
	MaxRoomCount  int               `json:"max_room_count" yaml:"max_room_count" env:"MAX_ROOM_COUNT"`
	MinRoomSize   int               `json:"min_room_size" yaml:"min_room_size" env:"MIN_ROOM_SIZE"`
	MaxRoomSize   int               `json:"max_room_size" yaml:"max_room_size" env:"MAX_ROOM_SIZE"`
	RoomPadding   int               `json:"room_padding" yaml:"room_padding" env:"ROOM_PADDING"`
	CorridorStyle string            `json:"corridor_style" yaml:"corridor_style" env:"CORRIDOR_STYLE"`
	MonsterChance int               `json:"monster_chance" yaml:"monster_chance" env:"MONSTER_CHANCE"`
	Dimension     gamemap.Dimension `json:"dimension" yaml:"dimension" envPrefix:"DIMENSION_"`
	// Seed is optional; nil means seed from the clock.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"SEED"`
}

// FOV controls the player's sight.
type FOV struct {
	// Radius is the Euclidean sight range in tiles.
	Radius int `json:"radius" yaml:"radius" env:"RADIUS"`
	// Algorithm is "line-of-sight" (default) or "shadowcast". Shadowcast can
	// light tiles whose straight line to the player crosses a wall.
	Algorithm string `json:"algorithm" yaml:"algorithm" env:"ALGORITHM"`
}

// Input maps actions to key names. A key name is a single character or a
// tcell key name such as "Esc" or "Enter".
type Input struct {
	Up        string `json:"up" yaml:"up" env:"UP"`
	Down      string `json:"down" yaml:"down" env:"DOWN"`
	Left      string `json:"left" yaml:"left" env:"LEFT"`
	Right     string `json:"right" yaml:"right" env:"RIGHT"`
	UpLeft    string `json:"up_left" yaml:"up_left" env:"UP_LEFT"`
	UpRight   string `json:"up_right" yaml:"up_right" env:"UP_RIGHT"`
	DownLeft  string `json:"down_left" yaml:"down_left" env:"DOWN_LEFT"`
	DownRight string `json:"down_right" yaml:"down_right" env:"DOWN_RIGHT"`
	Wait      string `json:"wait" yaml:"wait" env:"WAIT"`
	Descend   string `json:"descend" yaml:"descend" env:"DESCEND"`
	Cancel    string `json:"cancel" yaml:"cancel" env:"CANCEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Level: Level{
			MaxRoomCount:  30,
			MinRoomSize:   6,
			MaxRoomSize:   10,
			RoomPadding:   1,
			CorridorStyle: generate.CorridorLShaped.String(),
			MonsterChance: 100,
			Dimension:     gamemap.Dimension{Width: 80, Height: 45},
		},
		FOV: FOV{
			Radius:    8,
			Algorithm: system.FOVLineOfSight.String(),
		},
		Input: Input{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpLeft: "y", UpRight: "u", DownLeft: "b", DownRight: "n",
			Wait: ".", Descend: ">", Cancel: "Esc",
		},
	}
}

func isYAML(key string) bool {
	ext := strings.ToLower(filepath.Ext(key))
	return ext == ".yaml" || ext == ".yml"
}

// Decode parses data over the defaults. The codec is chosen from key's
// extension: YAML for .yaml/.yml, JSON otherwise.
func Decode(key string, data []byte) (Config, error) {
	cfg := Default()
	var err error
	if isYAML(key) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", key, err)
	}
	return cfg, nil
}

// Encode serialises cfg in the format implied by key.
func Encode(key string, cfg Config) ([]byte, error) {
	if isYAML(key) {
		return yaml.Marshal(cfg)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Load reads key from store. A missing key yields the defaults, which are
// written back so the user has a file to edit.
func Load(store storage.Store, key string) (Config, error) {
	data, err := store.Read(key)
	if errors.Is(err, storage.ErrNotFound) {
		cfg := Default()
		if out, err := Encode(key, cfg); err == nil {
			_ = store.Write(key, out)
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", key, err)
	}
	return Decode(key, data)
}

// ApplyEnv overlays ROGUE_* environment variables onto cfg,
// e.g. ROGUE_LEVEL_SEED or ROGUE_FOV_RADIUS.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every section without generating anything.
func (c Config) Validate() error {
	gen, err := c.Level.Generator(1, rand.New(rand.NewSource(0)))
	if err != nil {
		return err
	}
	if err := gen.Validate(); err != nil {
		return err
	}
	if c.Level.MonsterChance < 0 || c.Level.MonsterChance > 100 {
		return fmt.Errorf("config: monster_chance %d outside 0-100", c.Level.MonsterChance)
	}
	if c.FOV.Radius < 0 {
		return fmt.Errorf("config: fov radius %d is negative", c.FOV.Radius)
	}
	if _, err := system.ParseFOVAlgorithm(c.FOV.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Generator converts the level section into a generator config for depth.
func (l Level) Generator(depth int, rng *rand.Rand) (*generate.Config, error) {
	style, err := generate.ParseCorridorStyle(l.CorridorStyle)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &generate.Config{
		Dimension:     l.Dimension,
		MaxRooms:      l.MaxRoomCount,
		MinRoomSize:   l.MinRoomSize,
		MaxRoomSize:   l.MaxRoomSize,
		RoomPadding:   l.RoomPadding,
		CorridorStyle: style,
		Depth:         depth,
		MonsterChance: l.MonsterChance,
		Rand:          rng,
	}, nil
}

// ParsedAlgorithm returns the FOV algorithm named by the section.
func (f FOV) ParsedAlgorithm() (system.FOVAlgorithm, error) {
	return system.ParseFOVAlgorithm(f.Algorithm)
}
