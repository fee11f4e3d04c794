package main

import (
	"github.com/spf13/cobra"
)

var validateFlags struct {
	format string
	record bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check dictionary files for consistency",
	Long: `Check MARBL dictionary files for structural consistency.

Subcommands:
  settings - Check settings dictionaries
  diags    - Check diagnostics dictionaries

Every violation is logged as it is found. The command exits non-zero
when any checked file is inconsistent, so it can gate CI pipelines.

Examples:
  # Check a settings dictionary
  marlin validate settings settings.yaml

  # Check several diagnostics dictionaries, JSON output for CI
  marlin validate diags base.yaml ecosys.yaml --format json

  # Record the run in the history database
  marlin validate settings settings.yaml --record`,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.PersistentFlags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.PersistentFlags().BoolVar(&validateFlags.record, "record", false, "record the run in the history database")
}
