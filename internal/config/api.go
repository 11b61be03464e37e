package config

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/api"
)

// APIConfig controls how we talk to the fight-data API.
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	Revision    api.Revision
}

func loadAPI() APIConfig {
	raw := envOrDefault(envAPIRevision, defaultAPIRevision)
	revision, err := api.ParseRevision(raw)
	if err != nil {
		// Kept as given so Validate can reject it at startup.
		revision = api.Revision(raw)
	}
	return APIConfig{
		BaseURL:     envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout:     durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		MaxAttempts: intEnvOrDefault(envAPIMaxAttempts, defaultAPIMaxAttempts),
		RetryDelay:  durationEnvOrDefault(envAPIRetryDelay, defaultAPIRetryDelay),
		Revision:    revision,
	}
}

// Validate rejects settings that would make every upstream call wrong.
func (c APIConfig) Validate() error {
	if _, err := api.ParseRevision(string(c.Revision)); err != nil {
		return fmt.Errorf("%s: %w", envAPIRevision, err)
	}
	return nil
}
