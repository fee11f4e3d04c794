package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"marbl-hq/marlin/pkg/schema/ast"
	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
)

// SettingsValidator checks that a settings dictionary conforms to the
// MARBL parameter file standards:
//
//  1. _order is a top-level key
//  2. Everything listed in _order is a top-level key
//  3. All top-level keys that do not begin with '_' are listed in _order
//  4. All second-level dictionaries (variable names) contain a datatype key
//  5. If datatype is not a mapping, the variable also carries longname,
//     subcategory, units, default_value
//  6. If datatype is a mapping, every non-underscore key inside it is a
//     sub-variable checked per (5)
//  7. A mapping-typed default_value must carry a "default" key
//
// Sub-variables of a derived type are validated one level deep only.
type SettingsValidator struct {
	logger  *slog.Logger
	checker *VariableFieldChecker
}

// NewSettingsValidator creates a settings validator that logs violations
// to the given logger. A nil logger falls back to slog.Default().
func NewSettingsValidator(logger *slog.Logger) *SettingsValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsValidator{
		logger:  logger,
		checker: NewVariableFieldChecker(logger),
	}
}

// IsConsistent reports the aggregate verdict for the settings dictionary.
func (v *SettingsValidator) IsConsistent(settings *ast.Value) bool {
	return v.Validate(settings).Consistent
}

// Validate checks the settings dictionary and returns the verdict together
// with every violation found. The dictionary is not modified, and each
// call allocates its own state, so Validate is safe to invoke concurrently
// on distinct dictionaries.
func (v *SettingsValidator) Validate(settings *ast.Value) *Result {
	res := newResult()

	order, ok := settings.Get("_order")
	if !ok {
		msg := "Can not find _order key"
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindMissingKey, "_order", msg, location(settings))
		// Historical behavior: a settings file without _order is still
		// reported consistent. Callers must treat the logged error as
		// fatal; the recorded violation is their handle on it.
		return res
	}

	// Everything listed in _order must be a top-level key.
	for _, item := range order.Items {
		if !settings.Has(item.Text) {
			msg := fmt.Sprintf("Can not find %s category that is listed in _order", item.Text)
			v.logger.Error(msg)
			res.Violations.AddViolation(schemaerrors.KindUndeclaredCategory, item.Text, msg, item.Location)
			res.Consistent = false
		}
	}

	for _, entry := range settings.Entries {
		catName := entry.Key
		if strings.HasPrefix(catName, "_") {
			continue
		}

		// Every non-underscore top-level key must appear in _order.
		if !sequenceContains(order, catName) {
			msg := fmt.Sprintf("Category %s not included in _order", catName)
			v.logger.Error(msg)
			res.Violations.AddViolation(schemaerrors.KindUnlistedCategory, catName, msg, entry.Value.Location)
			res.Consistent = false
		}

		for _, varEntry := range entry.Value.Entries {
			v.validateVariable(catName, varEntry.Key, varEntry.Value, res)
		}
	}

	return res
}

// validateVariable checks a single variable description within a category.
func (v *SettingsValidator) validateVariable(catName, varName string, variable *ast.Value, res *Result) {
	datatype, ok := variable.Get("datatype")
	if !ok {
		msg := fmt.Sprintf("Variable %s does not contain a key for datatype", varName)
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindMissingKey, catName+"."+varName, msg, location(variable))
		res.Consistent = false
		return
	}

	if datatype.IsMapping() {
		// Derived type: every non-underscore key inside datatype is a
		// sub-variable with the full set of descriptive fields.
		for _, sub := range datatype.Entries {
			if strings.HasPrefix(sub.Key, "_") {
				continue
			}
			compound := fmt.Sprintf("%s%%%s", varName, sub.Key)
			if !v.checker.check(sub.Value, compound, res.Violations) {
				res.Consistent = false
			}
		}
		return
	}

	if !v.checker.check(variable, varName, res.Violations) {
		res.Consistent = false
	}
}

// sequenceContains reports whether the sequence holds a scalar equal to
// name.
func sequenceContains(seq *ast.Value, name string) bool {
	for _, item := range seq.Items {
		if item.IsScalar() && item.Text == name {
			return true
		}
	}
	return false
}
