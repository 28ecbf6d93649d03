// Command coordinate runs the Daily Coordinator for a single date,
// printing the resulting plan, and exits.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growplan/engine/internal/config"
	"github.com/growplan/engine/internal/coordinator"
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
	dateFlag := flag.String("date", "", "date to coordinate, YYYY-MM-DD (default: today)")
	flag.Parse()

	date := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", *dateFlag, err)
		}
		date = parsed
	}

	cfg, err := config.LoadCoordinateConfig()
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

	coord := coordinator.New(store, logger)

	slog.InfoContext(ctx, "running coordinate", "date", date.Format("2006-01-02"))
	result, err := coord.Coordinate(ctx, date)
	if err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func shutdownWithTimeout(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "shutdown failed", "error", err)
	}
}
