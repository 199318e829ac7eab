package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ascii-roguelike/internal/session"
	"ascii-roguelike/internal/storage"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed      int64 `json:"seed"`
	Depth     int   `json:"depth"`
	Turns     int   `json:"turns"`
	TilesSeen int   `json:"tiles_seen"`
}

// runLogFor summarises s.
func runLogFor(s *session.Session) RunLog {
	return RunLog{
		Seed:      s.Seed(),
		Depth:     s.Depth(),
		Turns:     s.Turns(),
		TilesSeen: s.TilesSeen(),
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func saveRunLog(log RunLog) {
	dir, err := runLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// runLogDir returns the directory where run logs are stored.
// XDG Base Directory layout: $XDG_DATA_HOME/ascii-roguelike,
// defaulting to ~/.local/share/ascii-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, storage.AppDir), nil
}
