package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/game"
	"ascii-roguelike/internal/storage"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configKey := flag.String("config", config.DefaultKey, "Configuration file under the user config directory (.json or .yaml)")
	seed := flag.Int64("seed", 0, "Map seed (0 uses the configured seed or the clock)")
	watch := flag.Bool("watch", false, "Regenerate the level when the configuration file changes")
	logPath := flag.String("log", "", "Append diagnostics to this file")
	flag.Parse()

	if err := run(*configKey, *seed, *watch, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configKey string, seed int64, watch bool, logPath string) error {
	logger := log.New(io.Discard, "", 0)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	store, err := storage.NewPlatform()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(store, configKey, seed)
	if err != nil {
		return err
	}

	opts := game.Options{RecordRuns: true, Logger: logger}
	if watch {
		reloads, stop, err := watchConfig(store, configKey, seed, logger)
		if err != nil {
			return err
		}
		defer stop()
		opts.Reload = reloads
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg, opts)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

// loadConfig reads key from store, overlays the environment and applies a
// non-zero seed override.
func loadConfig(store storage.Store, key string, seed int64) (config.Config, error) {
	cfg, err := config.Load(store, key)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	if seed != 0 {
		cfg.Level.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config %s: %w", key, err)
	}
	return cfg, nil
}
