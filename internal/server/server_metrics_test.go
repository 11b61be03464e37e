package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/fightcard-service/internal/config"
	"github.com/preston-bernstein/fightcard-service/internal/metrics"
	"github.com/preston-bernstein/fightcard-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv, err := newServerWithMetrics(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Metrics = config.MetricsConfig{Enabled: false}

	srv, err := newServerWithMetrics(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv, err := newServerWithMetrics(cfg, nil, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no telemetry shutdown with injected recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected injected shutdown to succeed, got %v", err)
	}
}

func TestNewServerShutsDownTelemetryWhenSessionStoreFails(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	stopped := 0
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error {
			stopped++
			return nil
		}, nil
	}

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0"}
	cfg.Session = config.SessionConfig{Backend: config.SessionSQLite, Path: "/dev/null/session.db"}

	if _, err := newServerWithMetrics(cfg, nil, nil); err == nil {
		t.Fatalf("expected session store error")
	}
	if stopped != 1 {
		t.Fatalf("expected telemetry shutdown once, got %d", stopped)
	}
}

func TestNewServerRejectsUnknownRevision(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()
	setups := 0
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		setups++
		return metrics.NewRecorder(), nil, nil, nil
	}

	cfg := testConfig("http://127.0.0.1:1")
	cfg.API.Revision = "v9"

	srv, err := newServerWithMetrics(cfg, nil, nil)
	if err == nil || srv != nil {
		t.Fatalf("expected startup to fail on unknown revision, got %v", err)
	}
	if setups != 0 {
		t.Fatalf("expected no telemetry setup before validation, got %d", setups)
	}
}
