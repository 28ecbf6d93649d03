package config

import (
	"fmt"
	"time"

	"github.com/growplan/engine/internal/env"
)

// NotifyConfig holds all configuration for the notifier binary.
type NotifyConfig struct {
	Database      DatabaseConfig
	Observability ObservabilityConfig
	ScanInterval  time.Duration `env:"GROWPLAN_NOTIFY_SCAN_INTERVAL"`
}

// LoadNotifyConfig loads and validates the notifier binary's
// configuration from the environment.
func LoadNotifyConfig() (*NotifyConfig, error) {
	cfg := &NotifyConfig{}
	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load notify config: %w", err)
	}
	if cfg.ScanInterval == 0 {
		cfg.ScanInterval = 60 * time.Second
	}
	cfg.Database = cfg.Database.WithDefaults()
	cfg.Observability = cfg.Observability.WithDefaults("growplan-notifier")
	return cfg, nil
}
