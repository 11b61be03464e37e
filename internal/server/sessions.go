package server

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/fightcard-service/internal/config"
	"github.com/preston-bernstein/fightcard-service/internal/session"
)

// openSessionStore returns the configured store and, for backends holding a
// handle, the closer to release on shutdown.
func openSessionStore(cfg config.SessionConfig) (session.Store, io.Closer, error) {
	switch cfg.Backend {
	case config.SessionMemory:
		return session.NewMemoryStore(), nil, nil
	case config.SessionSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, nil, err
		}
		store, err := session.OpenSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return session.NewFileStore(cfg.Path), nil, nil
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return nil
}
