package validator

import (
	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
)

// Result is the outcome of a single validation pass.
//
// Consistent is the aggregate verdict the original tooling acts on.
// Violations carries the structured account of everything logged during
// the pass. The two are reported independently: a settings file with a
// missing _order key records a violation yet is still reported consistent
// (see SettingsValidator.Validate).
type Result struct {
	Consistent bool
	Violations *schemaerrors.ViolationList
}

// newResult creates a result with an empty violation list and a
// provisional consistent verdict.
func newResult() *Result {
	return &Result{
		Consistent: true,
		Violations: schemaerrors.NewViolationList(),
	}
}
