package validator

import (
	"fmt"
	"log/slog"

	"marbl-hq/marlin/pkg/schema/ast"
	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
)

// diagRequiredFields are the keys every diagnostic description must carry.
// 2D variables list vertical_grid explicitly as "none".
var diagRequiredFields = []string{"module", "longname", "units", "vertical_grid", "frequency", "operator"}

var (
	validFrequencies = map[string]bool{
		"never":  true,
		"low":    true,
		"medium": true,
		"high":   true,
	}

	validOperators = map[string]bool{
		"instantaneous": true,
		"average":       true,
		"minimum":       true,
		"maximum":       true,
	}
)

// DiagnosticsValidator checks that a diagnostics dictionary conforms to
// the MARBL diagnostics file standards: every entry is a mapping carrying
// module, longname, units, vertical_grid, frequency, and operator, with
// frequency and operator either both sequences of equal length or both
// scalars, and each paired frequency/operator drawn from the allowed sets.
type DiagnosticsValidator struct {
	logger *slog.Logger
}

// NewDiagnosticsValidator creates a diagnostics validator that logs
// violations to the given logger. A nil logger falls back to
// slog.Default().
func NewDiagnosticsValidator(logger *slog.Logger) *DiagnosticsValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiagnosticsValidator{logger: logger}
}

// IsConsistent reports the aggregate verdict for the diagnostics
// dictionary.
func (v *DiagnosticsValidator) IsConsistent(diags *ast.Value) bool {
	return v.Validate(diags).Consistent
}

// Validate checks the diagnostics dictionary and returns the verdict
// together with every violation found. A non-mapping argument fails
// immediately.
func (v *DiagnosticsValidator) Validate(diags *ast.Value) *Result {
	res := newResult()

	if !diags.IsMapping() {
		msg := "Argument must be a dictionary"
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindTypeMismatch, "", msg, location(diags))
		res.Consistent = false
		return res
	}

	for _, entry := range diags.Entries {
		v.validateDiagnostic(entry.Key, entry.Value, res)
	}

	return res
}

// validateDiagnostic checks a single diagnostic description.
func (v *DiagnosticsValidator) validateDiagnostic(diagName string, diag *ast.Value, res *Result) {
	if !diag.IsMapping() {
		msg := fmt.Sprintf("DiagsDict['%s'] must be a dictionary", diagName)
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindTypeMismatch, diagName, msg, location(diag))
		res.Consistent = false
		return
	}

	// Every missing field is reported; an incomplete entry skips the
	// frequency/operator checks entirely.
	missingField := false
	for _, field := range diagRequiredFields {
		if !diag.Has(field) {
			msg := fmt.Sprintf("%s not a key in DiagsDict['%s']", field, diagName)
			v.logger.Error(msg)
			res.Violations.AddViolation(schemaerrors.KindMissingKey, diagName, msg, diag.Location)
			res.Consistent = false
			missingField = true
		}
	}
	if missingField {
		return
	}

	frequency, _ := diag.Get("frequency")
	operator, _ := diag.Get("operator")
	errPrefix := fmt.Sprintf("Inconsistency in DiagsDict['%s']:", diagName)

	// Either both frequency and operator are sequences or neither is.
	// This mismatch is logged but does not mark the entry invalid and
	// does not stop the remaining checks.
	if frequency.IsSequence() != operator.IsSequence() {
		msg := fmt.Sprintf("%s either both frequency and operator must be lists or neither can be", errPrefix)
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindTypeMismatch, diagName, msg, frequency.Location)
	}

	// Effective length: sequence length if a sequence, else 1.
	freqLen, opLen := 1, 1
	if frequency.IsSequence() {
		freqLen = frequency.Len()
	}
	if operator.IsSequence() {
		opLen = operator.Len()
	}
	if freqLen != opLen {
		msg := fmt.Sprintf("%s frequency is length %d but operator is length %d", errPrefix, freqLen, opLen)
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindLengthMismatch, diagName, msg, frequency.Location)
		res.Consistent = false
		return
	}

	if frequency.IsSequence() {
		for n, freq := range frequency.Items {
			op := operator
			if operator.IsSequence() {
				op = operator.Items[n]
			}
			v.checkPair(freq, op, errPrefix, diagName, res)
		}
	} else {
		v.checkPair(frequency, operator, errPrefix, diagName, res)
	}
}

// checkPair verifies one frequency/operator rule against the allowed sets.
// Each violation is logged independently.
func (v *DiagnosticsValidator) checkPair(freq, op *ast.Value, errPrefix, diagName string, res *Result) {
	if !freq.IsScalar() || !validFrequencies[freq.Text] {
		msg := fmt.Sprintf("%s '%s' is not a valid frequency", errPrefix, freq.String())
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindInvalidEnum, diagName, msg, location(freq))
		res.Consistent = false
	}
	if !op.IsScalar() || !validOperators[op.Text] {
		msg := fmt.Sprintf("%s '%s' is not a valid operator", errPrefix, op.String())
		v.logger.Error(msg)
		res.Violations.AddViolation(schemaerrors.KindInvalidEnum, diagName, msg, location(op))
		res.Consistent = false
	}
}
