//go:build js && wasm

package storage

import (
	"errors"
	"fmt"
	"syscall/js"
)

// LocalStorage keeps values in the browser's window.localStorage.
type LocalStorage struct {
	Prefix string
	ls     js.Value
}

// NewLocalStorage binds to window.localStorage. Keys are stored as
// Prefix+key.
func NewLocalStorage(prefix string) (*LocalStorage, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return nil, errors.New("storage: localStorage unavailable")
	}
	return &LocalStorage{Prefix: prefix, ls: ls}, nil
}

// NewPlatform returns the browser store.
func NewPlatform() (Store, error) {
	return NewLocalStorage("ascii-roguelike/")
}

func (s *LocalStorage) Read(key string) ([]byte, error) {
	v := s.ls.Call("getItem", s.Prefix+key)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("read %s: %w", key, ErrNotFound)
	}
	return []byte(v.String()), nil
}

// Write stores data as a string. A quota error thrown by the browser is
// returned instead of panicking.
func (s *LocalStorage) Write(key string, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write %s: %v", key, r)
		}
	}()
	s.ls.Call("setItem", s.Prefix+key, string(data))
	return nil
}
