//go:build js

package main

import (
	"errors"
	"log"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/storage"
)

func watchConfig(storage.Store, string, int64, *log.Logger) (<-chan config.Config, func(), error) {
	return nil, nil, errors.New("watch: not supported with browser storage")
}
