package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/fightcard-service/internal/config"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/server"
)

const (
	appName    = "fightcard-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	dotEnvErr := config.LoadDotEnv()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
	if dotEnvErr != nil {
		logging.Warn(logger, "dotenv load failed", logging.FieldError, dotEnvErr)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.Run(ctx, stop)
	return 0
}
