package api

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the configured client or a bare one. Deadlines
// come from the per-attempt context, so the default client sets no Timeout.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}

func resolveMaxAttempts(n int) int {
	if n <= 0 {
		return defaultMaxAttempts
	}
	return n
}

func resolveRetryDelay(d time.Duration) time.Duration {
	if d < 0 {
		return defaultRetryDelay
	}
	return d
}
