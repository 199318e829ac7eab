//go:build !js

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/storage"
)

func TestLoadConfigSeedOverride(t *testing.T) {
	store := &storage.Memory{}
	cfg, err := loadConfig(store, config.DefaultKey, 7)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level.Seed == nil || *cfg.Level.Seed != 7 {
		t.Fatalf("seed = %v; want 7", cfg.Level.Seed)
	}

	cfg, err = loadConfig(store, config.DefaultKey, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level.Seed != nil {
		t.Fatalf("zero seed flag should not set a seed, got %d", *cfg.Level.Seed)
	}
}

func TestLoadConfigEnvAndValidation(t *testing.T) {
	store := &storage.Memory{}
	t.Setenv("ROGUE_FOV_RADIUS", "3")
	cfg, err := loadConfig(store, config.DefaultKey, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FOV.Radius != 3 {
		t.Fatalf("radius = %d; want 3", cfg.FOV.Radius)
	}

	t.Setenv("ROGUE_FOV_ALGORITHM", "raycast")
	if _, err := loadConfig(store, config.DefaultKey, 0); err == nil {
		t.Fatal("unknown algorithm should fail validation")
	}
}

func TestWatchConfigNeedsFiles(t *testing.T) {
	if _, _, err := watchConfig(&storage.Memory{}, config.DefaultKey, 0, nil); err == nil {
		t.Fatal("memory store cannot be watched")
	}
}

func TestWatchConfigDeliversEdits(t *testing.T) {
	root := t.TempDir()
	store := storage.NewFileStore(root)
	if _, err := loadConfig(store, config.DefaultKey, 0); err != nil {
		t.Fatal(err)
	}

	reloads, stop, err := watchConfig(store, config.DefaultKey, 0, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(root, "other.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, config.DefaultKey), []byte(`{"fov":{"radius":2}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloads:
		if cfg.FOV.Radius != 2 {
			t.Fatalf("radius = %d; want 2", cfg.FOV.Radius)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}
