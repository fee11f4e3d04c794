package config

import "time"

// Config is the root configuration for the marlin tool.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the log output format: text, json.
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls the Prometheus metrics endpoint exposed by the
// watch daemon.
type MetricsConfig struct {
	// Enabled turns the metrics endpoint on.
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the host:port the metrics server binds to.
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path serving the exposition format.
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric name subsystem component.
	Subsystem string `yaml:"subsystem"`
}

// HistoryConfig controls the validation-run history store.
type HistoryConfig struct {
	// Enabled turns run recording on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open database connections.
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle database connections.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables Write-Ahead Logging for better concurrency.
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is the duration to wait when the database is locked.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// WatchConfig controls file watching and scheduled re-validation.
type WatchConfig struct {
	// DebounceInterval is the time to wait after a file event before
	// re-validating, collapsing editor write bursts into one run.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions lists the file extensions watched in directory mode.
	Extensions []string `yaml:"extensions"`

	// Schedule is an optional cron expression for periodic re-validation
	// in addition to file events (e.g. "0 3 * * *").
	Schedule string `yaml:"schedule"`
}
