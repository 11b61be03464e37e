package server

import (
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/config"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	writeSlack        = 2 * time.Second

	// A request may wait on two upstream calls in sequence: the prediction
	// list and then the event lookups it fans out.
	chainedCalls = 2
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor covers every attempt of each chained upstream call plus the
// delays between attempts, never dropping below writeTimeout.
func writeTimeoutFor(cfg config.APIConfig) time.Duration {
	attempts := max(cfg.MaxAttempts, 1)
	perCall := time.Duration(attempts)*cfg.Timeout + time.Duration(attempts-1)*cfg.RetryDelay
	return max(writeTimeout, chainedCalls*perCall+writeSlack)
}
