package schema

import (
	"log/slog"

	"marbl-hq/marlin/pkg/schema/ast"
	"marbl-hq/marlin/pkg/schema/parser"
	"marbl-hq/marlin/pkg/schema/validator"
)

// ValidateSettingsFile parses the settings file at path and runs the
// settings consistency check. The returned error covers I/O and syntax
// problems only; schema violations are reported through the Result.
func ValidateSettingsFile(path string, logger *slog.Logger) (*validator.Result, error) {
	dict, err := parser.NewParser().Parse(path)
	if err != nil {
		return nil, err
	}
	return validator.NewSettingsValidator(logger).Validate(dict), nil
}

// ValidateDiagnosticsFile parses the diagnostics file at path and runs the
// diagnostics consistency check.
func ValidateDiagnosticsFile(path string, logger *slog.Logger) (*validator.Result, error) {
	dict, err := parser.NewParser().Parse(path)
	if err != nil {
		return nil, err
	}
	return validator.NewDiagnosticsValidator(logger).Validate(dict), nil
}

// ParseFile parses a settings or diagnostics file without validating it.
// Use this to inspect the value tree directly.
func ParseFile(path string) (*ast.Value, error) {
	return parser.NewParser().Parse(path)
}
