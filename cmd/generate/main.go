// Command generate runs the Task Generator's GenerateAll sweep once
// against every active garden and exits, mirroring cmd/worker's
// direct-construction style but as a single invocation rather than a
// ticker loop.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growplan/engine/internal/config"
	"github.com/growplan/engine/internal/generator"
	"github.com/growplan/engine/internal/infrastructure/postgres"
	"github.com/growplan/engine/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadGenerateConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	obsCfg := observability.Config{
		Enabled: cfg.Observability.OTelEnabled, ServiceName: cfg.Observability.ServiceName, Collector: cfg.Observability.OTelCollector,
	}

	lp, logger, err := observability.InitLogger(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer shutdownWithTimeout(lp.Shutdown)
	slog.SetDefault(logger)

	tp, err := observability.InitTracerProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init tracer provider: %w", err)
	}
	defer shutdownWithTimeout(tp.Shutdown)

	store, err := postgres.NewPostgresStore(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	gen := generator.New(store, logger)

	slog.InfoContext(ctx, "running generate sweep")
	created, err := gen.GenerateAll(ctx)
	if err != nil {
		return fmt.Errorf("generateAll: %w", err)
	}
	slog.InfoContext(ctx, "generate sweep completed", "tasks_created", created)
	return nil
}

func shutdownWithTimeout(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "shutdown failed", "error", err)
	}
}
