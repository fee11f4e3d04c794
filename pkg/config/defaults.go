package config

import "time"

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultMetricsListenAddress = "127.0.0.1:9137"
	DefaultMetricsPath          = "/metrics"
	DefaultMetricsNamespace     = "marlin"
	DefaultMetricsSubsystem     = "validation"

	DefaultHistoryPath         = "marlin_history.db"
	DefaultHistoryMaxOpenConns = 10
	DefaultHistoryMaxIdleConns = 5
	DefaultHistoryBusyTimeout  = 5 * time.Second

	DefaultWatchDebounceInterval = 100 * time.Millisecond
)

// DefaultConfig returns a configuration populated with defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.History.WALMode = true
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields of cfg with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.History.MaxOpenConns == 0 {
		cfg.History.MaxOpenConns = DefaultHistoryMaxOpenConns
	}
	if cfg.History.MaxIdleConns == 0 {
		cfg.History.MaxIdleConns = DefaultHistoryMaxIdleConns
	}
	if cfg.History.BusyTimeout == 0 {
		cfg.History.BusyTimeout = DefaultHistoryBusyTimeout
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".yaml", ".yml", ".json"}
	}
}
