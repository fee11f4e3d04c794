package main

import (
	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/history"
	"marbl-hq/marlin/pkg/schema"
)

var validateDiagsCmd = &cobra.Command{
	Use:   "diags FILE...",
	Short: "Check diagnostics dictionaries",
	Long: `Check diagnostics dictionaries for consistency.

Every diagnostic must carry the fields module, longname, units,
vertical_grid, frequency, and operator. When frequency and operator are
lists they must have the same length, and every value must come from
the allowed frequency and operator sets.

Examples:
  # Check one diagnostics file
  marlin validate diags diagnostics.yaml

  # JSON output for CI
  marlin validate diags diagnostics.yaml --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidation(cmd, history.SchemaDiagnostics, args, schema.ValidateDiagnosticsFile)
	},
}

func init() {
	validateCmd.AddCommand(validateDiagsCmd)
}
