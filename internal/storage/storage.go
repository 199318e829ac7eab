// Package storage persists small named blobs such as configuration files.
// The backing store is picked at build time: files on native builds,
// window.localStorage under js/wasm.
package storage

import (
	"errors"
	"sync"
)

// AppDir is the directory name used under the user's config and data roots.
const AppDir = "ascii-roguelike"

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes whole values by key.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}
