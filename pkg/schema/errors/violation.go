package errors

import (
	"fmt"
	"strings"

	"marbl-hq/marlin/pkg/schema/ast"
)

// Kind categorizes a schema violation.
type Kind string

const (
	// KindMissingKey marks a mandatory key absent at any nesting level.
	KindMissingKey Kind = "missing_key"
	// KindUnlistedCategory marks a top-level category not declared in _order.
	KindUnlistedCategory Kind = "unlisted_category"
	// KindUndeclaredCategory marks a name in _order with no top-level key.
	KindUndeclaredCategory Kind = "undeclared_category"
	// KindTypeMismatch marks an entry or field that is not the required
	// shape, including a frequency/operator list-ness mismatch.
	KindTypeMismatch Kind = "type_mismatch"
	// KindLengthMismatch marks paired sequences of different length.
	KindLengthMismatch Kind = "length_mismatch"
	// KindInvalidEnum marks a frequency or operator outside the allowed set.
	KindInvalidEnum Kind = "invalid_enum"
	// KindMissingDefault marks a mapping-typed default_value without a
	// "default" key.
	KindMissingDefault Kind = "missing_default"
)

// Violation is a single recorded schema violation.
type Violation struct {
	Kind     Kind         // Category of violation
	Path     string       // Dictionary location ("cat1.v1", "phyto%sname", ...)
	Message  string       // Human-readable message, matching the log line
	Location ast.Location // Source location, when known
}

// Error implements the error interface.
func (v *Violation) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", v.Kind, v.Message))
	if v.Location.IsValid() {
		sb.WriteString(fmt.Sprintf(" (%s)", v.Location.String()))
	}
	return sb.String()
}

// ViolationList accumulates violations found during a validation pass.
// It allows recording every violation instead of failing on the first.
type ViolationList struct {
	Violations []*Violation
}

// NewViolationList creates a new empty violation list.
func NewViolationList() *ViolationList {
	return &ViolationList{
		Violations: make([]*Violation, 0),
	}
}

// Add appends a violation to the list.
func (vl *ViolationList) Add(v *Violation) {
	vl.Violations = append(vl.Violations, v)
}

// AddViolation creates and appends a violation with the given parameters.
func (vl *ViolationList) AddViolation(kind Kind, path, message string, location ast.Location) {
	vl.Add(&Violation{
		Kind:     kind,
		Path:     path,
		Message:  message,
		Location: location,
	})
}

// HasViolations returns true if any violation has been recorded.
func (vl *ViolationList) HasViolations() bool {
	return len(vl.Violations) > 0
}

// Count returns the number of recorded violations.
func (vl *ViolationList) Count() int {
	return len(vl.Violations)
}

// ByKind returns all violations of the given kind.
func (vl *ViolationList) ByKind(kind Kind) []*Violation {
	var result []*Violation
	for _, v := range vl.Violations {
		if v.Kind == kind {
			result = append(result, v)
		}
	}
	return result
}

// HasKind returns true if at least one violation of the given kind was
// recorded.
func (vl *ViolationList) HasKind(kind Kind) bool {
	for _, v := range vl.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Error implements the error interface, formatting every violation.
func (vl *ViolationList) Error() string {
	if !vl.HasViolations() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d violation(s):\n", vl.Count()))
	for _, v := range vl.Violations {
		sb.WriteString("  ")
		sb.WriteString(v.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (vl *ViolationList) ToError() error {
	if !vl.HasViolations() {
		return nil
	}
	return vl
}
