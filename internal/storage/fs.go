//go:build !js

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each key as a file below Root.
type FileStore struct {
	Root string
}

// NewFileStore returns a store rooted at root. The directory is created on
// first write.
func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// NewPlatform returns the default store for native builds: files under
// $XDG_CONFIG_HOME/ascii-roguelike, or ~/.config/ascii-roguelike.
func NewPlatform() (Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("storage: resolve config dir: %w", err)
	}
	return NewFileStore(filepath.Join(dir, AppDir)), nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || !filepath.IsLocal(key) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(s.Root, key), nil
}

func (s *FileStore) Read(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Write(key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
