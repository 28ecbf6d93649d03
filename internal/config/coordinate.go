package config

import (
	"fmt"
	"time"

	"github.com/growplan/engine/internal/env"
)

// CoordinateConfig holds all configuration for the coordinate binary,
// which runs the Daily Coordinator once per invocation. RunInterval is
// loaded (default 24 hours) but cmd/coordinate does not read it.
type CoordinateConfig struct {
	Database      DatabaseConfig
	Observability ObservabilityConfig
	RunInterval   time.Duration `env:"GROWPLAN_COORDINATE_RUN_INTERVAL"`
}

// LoadCoordinateConfig loads and validates the coordinate binary's
// configuration from the environment.
func LoadCoordinateConfig() (*CoordinateConfig, error) {
	cfg := &CoordinateConfig{}
	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load coordinate config: %w", err)
	}
	if cfg.RunInterval == 0 {
		cfg.RunInterval = 24 * time.Hour
	}
	cfg.Database = cfg.Database.WithDefaults()
	cfg.Observability = cfg.Observability.WithDefaults("growplan-coordinate")
	return cfg, nil
}
