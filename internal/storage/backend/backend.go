// Package backend opens the Store named in configuration.
package backend

import (
	"fmt"

	"github.com/brk3/momentum/internal/config"
	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/internal/storage/bolt"
	"github.com/brk3/momentum/internal/storage/memory"
	"github.com/brk3/momentum/internal/storage/sqlite"
)

func Open(cfg config.StorageConfig) (storage.Store, error) {
	var (
		s   storage.Store
		err error
	)
	switch cfg.Backend {
	case "", "bolt":
		s, err = bolt.Open(cfg.Path)
	case "sqlite":
		s, err = sqlite.Open(cfg.Path)
	case "memory":
		s = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	logger.Info("Opened store", "backend", cfg.Backend, "path", cfg.Path)
	return s, nil
}
