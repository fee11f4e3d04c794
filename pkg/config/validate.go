package config

import (
	"fmt"
	"net"

	"github.com/robfig/cron/v3"

	"marbl-hq/marlin/pkg/telemetry/logging"
)

// Validate checks the configuration for internally inconsistent or
// unusable values.
func Validate(cfg *Config) error {
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := logging.ParseFormat(cfg.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}

	if cfg.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(cfg.Metrics.ListenAddress); err != nil {
			return fmt.Errorf("metrics.listen_address %q: %w", cfg.Metrics.ListenAddress, err)
		}
		if cfg.Metrics.Path == "" || cfg.Metrics.Path[0] != '/' {
			return fmt.Errorf("metrics.path %q must begin with '/'", cfg.Metrics.Path)
		}
	}

	if cfg.History.Enabled {
		if cfg.History.Path == "" {
			return fmt.Errorf("history.path must be set when history is enabled")
		}
		if cfg.History.MaxOpenConns < 1 {
			return fmt.Errorf("history.max_open_conns must be at least 1, got %d", cfg.History.MaxOpenConns)
		}
		if cfg.History.MaxIdleConns < 0 {
			return fmt.Errorf("history.max_idle_conns must not be negative, got %d", cfg.History.MaxIdleConns)
		}
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval must not be negative, got %s", cfg.Watch.DebounceInterval)
	}
	if cfg.Watch.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Watch.Schedule); err != nil {
			return fmt.Errorf("watch.schedule %q: %w", cfg.Watch.Schedule, err)
		}
	}

	return nil
}
