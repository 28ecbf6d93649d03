package config

import (
	"fmt"
	"time"

	"github.com/growplan/engine/internal/env"
)

// GenerateConfig holds all configuration for the generate binary, which
// runs the Task Generator's GenerateAll sweep once and exits. ScanInterval
// is loaded (default one hour) but cmd/generate does not read it.
type GenerateConfig struct {
	Database      DatabaseConfig
	Observability ObservabilityConfig
	ScanInterval  time.Duration `env:"GROWPLAN_GENERATE_SCAN_INTERVAL"`
}

// LoadGenerateConfig loads and validates the generate binary's
// configuration from the environment.
func LoadGenerateConfig() (*GenerateConfig, error) {
	cfg := &GenerateConfig{}
	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load generate config: %w", err)
	}
	if cfg.ScanInterval == 0 {
		cfg.ScanInterval = time.Hour
	}
	cfg.Database = cfg.Database.WithDefaults()
	cfg.Observability = cfg.Observability.WithDefaults("growplan-generate")
	return cfg, nil
}
