package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fightcard-service/internal/api"
	"github.com/preston-bernstein/fightcard-service/internal/app/account"
	appevents "github.com/preston-bernstein/fightcard-service/internal/app/events"
	appfighters "github.com/preston-bernstein/fightcard-service/internal/app/fighters"
	apppredictions "github.com/preston-bernstein/fightcard-service/internal/app/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/config"
	httpserver "github.com/preston-bernstein/fightcard-service/internal/http"
	"github.com/preston-bernstein/fightcard-service/internal/http/handlers"
	"github.com/preston-bernstein/fightcard-service/internal/http/middleware"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/metrics"
	"github.com/preston-bernstein/fightcard-service/internal/poller"
	"github.com/preston-bernstein/fightcard-service/internal/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/session"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	client        *api.Client
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closers       []io.Closer
}

// New constructs a server wired to the configured fight-data API.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	store, closer, err := openSessionStore(cfg.Session)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, fmt.Errorf("session store: %w", err)
	}

	client := buildClient(cfg, logger, recorder)
	svcs := buildServices(cfg, client, session.NewManager(store), logger, recorder)

	var plr Poller
	var statusFn func() poller.Status
	if cfg.Probe.Enabled {
		probe := poller.New(client, logger, recorder, cfg.Probe.Interval)
		plr = probe
		statusFn = probe.Status
	}

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		client:        client,
		httpServer:    buildHTTPServer(cfg, svcs, logger, recorder, statusFn),
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
	if closer != nil {
		srv.closers = append(srv.closers, closer)
	}
	return srv, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildClient(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *api.Client {
	return api.NewClient(api.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		MaxAttempts: cfg.API.MaxAttempts,
		RetryDelay:  cfg.API.RetryDelay,
		Revision:    cfg.API.Revision,
		Logger:      logger,
		Recorder:    recorder,
	})
}

func buildServices(cfg config.Config, client *api.Client, sessions *session.Manager, logger *slog.Logger, recorder *metrics.Recorder) handlers.Services {
	// Event-url predictions carry only the event key; fight-id ones embed
	// their event.
	var lookup predictions.EventLookup
	if client.Revision() == api.RevisionEventURL {
		lookup = client
	}
	resolver := predictions.NewResolver(lookup, cfg.Views.LookupConcurrency, logger, recorder)

	return handlers.Services{
		Events:      appevents.NewService(client),
		Fighters:    appfighters.NewService(client, cfg.Views.RosterPageSize),
		Predictions: apppredictions.NewService(client, sessions, predictions.NewPipeline(resolver)),
		Account:     account.NewService(client, sessions),
	}
}

func buildHTTPServer(cfg config.Config, svcs handlers.Services, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() poller.Status) httpServer {
	handler := handlers.NewHandler(svcs, logger, statusFn)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeoutFor(cfg.API),
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the probe and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop probe", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logging.Warn(s.logger, "session store close failed", logging.FieldError, err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
