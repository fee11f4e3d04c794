package validator

import (
	"fmt"
	"log/slog"

	"marbl-hq/marlin/pkg/schema/ast"
	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
)

// variableFields are the keys every scalar-typed variable description must
// carry, checked in this order. The check stops at the first missing key.
var variableFields = []string{"longname", "subcategory", "units", "datatype", "default_value"}

// VariableFieldChecker validates that a single variable description
// carries the mandatory descriptive fields. It is shared by the settings
// validator, which applies it to plain variables and to the sub-variables
// of derived-type entries (reported under "var%subvar" compound names).
type VariableFieldChecker struct {
	logger *slog.Logger
}

// NewVariableFieldChecker creates a checker that logs violations to the
// given logger. A nil logger falls back to slog.Default().
func NewVariableFieldChecker(logger *slog.Logger) *VariableFieldChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &VariableFieldChecker{logger: logger}
}

// IsValid reports whether the variable description carries all mandatory
// fields. The name is used only in log messages; compound "%"-joined names
// identify sub-variables of derived types.
func (c *VariableFieldChecker) IsValid(variable *ast.Value, name string) bool {
	return c.check(variable, name, schemaerrors.NewViolationList())
}

// check validates the variable description, recording violations into vl.
// Only the first missing field is reported.
func (c *VariableFieldChecker) check(variable *ast.Value, name string, vl *schemaerrors.ViolationList) bool {
	loc := location(variable)

	for _, field := range variableFields {
		if !variable.Has(field) {
			msg := fmt.Sprintf("Variable %s is not well-defined in YAML\n     * Expecting %s as a key", name, field)
			c.logger.Error(msg)
			vl.AddViolation(schemaerrors.KindMissingKey, name, msg, loc)
			return false
		}
	}

	if dv, _ := variable.Get("default_value"); dv.IsMapping() {
		if !dv.Has("default") {
			msg := fmt.Sprintf("default_value dictionary in variable %s must have 'default' key", name)
			c.logger.Error(msg)
			c.logger.Info(fmt.Sprintf("Keys in default_value are %v", dv.Keys()))
			vl.AddViolation(schemaerrors.KindMissingDefault, name, msg, dv.Location)
			return false
		}
	}

	return true
}

// location returns the source location of a value, tolerating nil.
func location(v *ast.Value) ast.Location {
	if v == nil {
		return ast.Location{}
	}
	return v.Location
}
