// Command notifier runs the Notifier worker loop until it receives
// SIGINT or SIGTERM, mirroring cmd/worker's signal handling.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growplan/engine/internal/config"
	"github.com/growplan/engine/internal/infrastructure/postgres"
	"github.com/growplan/engine/internal/notifier"
	"github.com/growplan/engine/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadNotifyConfig()
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

	mp, err := observability.InitMeterProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init meter provider: %w", err)
	}
	defer shutdownWithTimeout(mp.Shutdown)

	store, err := postgres.NewPostgresStore(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer store.Close()

	worker := notifier.New(store, logger, notifier.WithScanInterval(cfg.ScanInterval))

	startErr := make(chan error, 1)
	go func() {
		startErr <- worker.Start(ctx)
	}()

	slog.InfoContext(ctx, "notifier started", "scan_interval", cfg.ScanInterval)

	select {
	case <-ctx.Done():
		slog.InfoContext(context.Background(), "shutting down")
		if err := worker.Stop(); err != nil {
			slog.ErrorContext(context.Background(), "failed to stop notifier cleanly", "error", err)
		}
		<-startErr
		return nil
	case err := <-startErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("notifier worker exited: %w", err)
		}
		return nil
	}
}

func shutdownWithTimeout(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "shutdown failed", "error", err)
	}
}
