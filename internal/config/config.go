package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Log     LogConfig
	API     APIConfig
	Views   ViewConfig
	Session SessionConfig
	Probe   ProbeConfig
	Metrics MetricsConfig
}

// LogConfig controls structured log output.
type LogConfig struct {
	Level  string
	Format string
}

// ViewConfig tunes how endpoints page and fan out.
type ViewConfig struct {
	LookupConcurrency int
	RosterPageSize    int
}

// ProbeConfig controls the upstream readiness probe.
type ProbeConfig struct {
	Enabled  bool
	Interval Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port: envOrDefault(envPort, defaultPort),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		API: loadAPI(),
		Views: ViewConfig{
			LookupConcurrency: intEnvOrDefault(envLookupLimit, defaultLookupLimit),
			RosterPageSize:    intEnvOrDefault(envRosterPageSize, defaultRosterPageSize),
		},
		Session: loadSession(),
		Probe: ProbeConfig{
			Enabled:  boolEnvOrDefault(envProbeEnabled, defaultProbeEnabled),
			Interval: durationEnvOrDefault(envProbeInterval, defaultProbeInterval),
		},
		Metrics: loadMetrics(),
	}
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	return c.API.Validate()
}

// LoadDotEnv reads DOTENV_FILE (or ./.env) into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv() error {
	path := envOrDefault(envDotEnvFile, defaultDotEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
