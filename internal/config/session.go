package config

import "strings"

// Session backends.
const (
	SessionMemory = "memory"
	SessionFile   = "file"
	SessionSQLite = "sqlite"
)

// SessionConfig selects where the login is persisted.
type SessionConfig struct {
	Backend string
	Path    string
}

func loadSession() SessionConfig {
	backend := strings.ToLower(envOrDefault(envSessionBackend, defaultSessionBackend))
	switch backend {
	case SessionMemory, SessionFile, SessionSQLite:
	default:
		backend = defaultSessionBackend
	}
	path := defaultSessionPath
	if backend == SessionSQLite {
		path = defaultSQLitePath
	}
	return SessionConfig{
		Backend: backend,
		Path:    envOrDefault(envSessionPath, path),
	}
}
