package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/config"
	"marbl-hq/marlin/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "marlin",
	Short: "Marlin - MARBL dictionary consistency checker",
	Long: `Marlin checks MARBL settings and diagnostics dictionaries for
structural consistency.

It validates:
  - Category ordering against the _order key
  - The required keys of every settings variable
  - The required fields of every diagnostic
  - Frequency/operator pairing and their allowed values

Inconsistencies are logged as they are found and summarized in the
command result.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "marlin.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file named by the --config flag,
// applying defaults, environment overrides, and the --verbose flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the process logger from configuration.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
}
