package main

import (
	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/history"
	"marbl-hq/marlin/pkg/schema"
)

var validateSettingsCmd = &cobra.Command{
	Use:   "settings FILE...",
	Short: "Check settings dictionaries",
	Long: `Check settings dictionaries for consistency.

A settings dictionary must declare its category order in _order, every
category must appear in _order and vice versa, and every variable (and
every per-module instance of a derived-type variable) must carry the
keys longname, subcategory, units, datatype, and default_value.

Examples:
  # Check one settings file
  marlin validate settings settings.yaml

  # Check several files at once
  marlin validate settings base.yaml overrides.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidation(cmd, history.SchemaSettings, args, schema.ValidateSettingsFile)
	},
}

func init() {
	validateCmd.AddCommand(validateSettingsCmd)
}
