package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/content-brain/internal/app"
	"github.com/riskibarqy/content-brain/internal/config"
	"github.com/riskibarqy/content-brain/internal/interfaces/cli"
	"github.com/riskibarqy/content-brain/internal/observability"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat == "console").
		With("service", cfg.ServiceName, "version", cfg.ServiceVersion, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitTracing(cfg, logger)
	if err != nil {
		logger.Warn("tracing unavailable", "error", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("flush traces failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, logger, cli.NewTerminalNotifier(stderr))
	if err != nil {
		logger.Error("build app", "error", err)
		_, _ = fmt.Fprintf(stderr, "startup: %v\n", err)
		return 1
	}
	a.Start(ctx)

	runner := cli.NewRunner(cli.Services{
		Auth:          a.Auth,
		Password:      a.Password,
		Onboarding:    a.Onboarding,
		Dashboard:     a.Dashboard,
		Calendar:      a.Calendar,
		ProfileEditor: a.ProfileEditor,
		Pillars:       a.Pillars,
		Settings:      a.Settings,
	}, stdin, stdout, stderr, logger)
	return runner.Run(ctx, args)
}
