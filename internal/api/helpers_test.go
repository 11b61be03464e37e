package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/metrics"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": {"application/json"}},
	}
}

func newTestClient(rt roundTripperFunc, opts ...func(*Config)) *Client {
	cfg := Config{
		BaseURL:     "http://fights.test/",
		Timeout:     time.Second,
		MaxAttempts: 1,
		RetryDelay:  0,
		HTTPClient:  &http.Client{Transport: rt},
		Recorder:    metrics.NewRecorder(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

func withAttempts(n int) func(*Config) {
	return func(cfg *Config) { cfg.MaxAttempts = n }
}

func withRevision(r Revision) func(*Config) {
	return func(cfg *Config) { cfg.Revision = r }
}
