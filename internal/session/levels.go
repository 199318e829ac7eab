package session

import (
	"math"
	"math/rand"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/generate"
)

// MaxDepth is the deepest level the exit leads to.
const MaxDepth = 10

// levelConfig builds a generate.Config for depth. Monster chance ramps from
// the configured value at depth 1 to 100 at MaxDepth.
func levelConfig(lvl config.Level, depth int, seed int64) (*generate.Config, error) {
	cfg, err := lvl.Generator(depth, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	t := 0.0
	if MaxDepth > 1 {
		t = float64(depth-1) / float64(MaxDepth-1)
	}
	cfg.MonsterChance = lerpi(lvl.MonsterChance, 100, min(max(t, 0), 1))
	return cfg, nil
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
