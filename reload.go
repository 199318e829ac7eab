//go:build !js

package main

import (
	"fmt"
	"log"
	"path/filepath"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/storage"
)

// watchConfig reloads key whenever its file changes and delivers each valid
// configuration on the returned channel. stop releases the watcher.
func watchConfig(store storage.Store, key string, seed int64, logger *log.Logger) (<-chan config.Config, func(), error) {
	files, ok := store.(*storage.FileStore)
	if !ok {
		return nil, nil, fmt.Errorf("watch: %T is not backed by files", store)
	}
	path := filepath.Join(files.Root, key)
	w, err := config.NewWatcher(filepath.Dir(path))
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", path, err)
	}

	out := make(chan config.Config, 1)
	quit := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(name) != path {
					continue
				}
				cfg, err := loadConfig(store, key, seed)
				if err != nil {
					logger.Printf("reload: %v", err)
					continue
				}
				select {
				case out <- cfg:
				case <-quit:
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Printf("watch: %v", err)
			case <-quit:
				return
			}
		}
	}()

	stop := func() {
		close(quit)
		_ = w.Close()
	}
	return out, stop, nil
}
