package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
	"marbl-hq/marlin/pkg/schema/validator"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is human-readable output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or json)", s)
	}
}

// Report is the printable outcome of validating one file.
type Report struct {
	Schema     string            `json:"schema"`
	File       string            `json:"file"`
	Consistent bool              `json:"consistent"`
	Violations []ReportViolation `json:"violations,omitempty"`
}

// ReportViolation is one violation in printable form.
type ReportViolation struct {
	Kind     string `json:"kind"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// NewReport converts a validation result into a Report.
func NewReport(schema, file string, res *validator.Result) *Report {
	report := &Report{
		Schema:     schema,
		File:       file,
		Consistent: res.Consistent,
	}
	for _, v := range res.Violations.Violations {
		rv := ReportViolation{
			Kind:    string(v.Kind),
			Path:    v.Path,
			Message: v.Message,
		}
		if v.Location.IsValid() {
			rv.Location = v.Location.String()
		}
		report.Violations = append(report.Violations, rv)
	}
	return report
}

// String renders the report as human-readable text.
func (r *Report) String() string {
	var sb strings.Builder

	verdict := "consistent"
	if !r.Consistent {
		verdict = "INCONSISTENT"
	}
	fmt.Fprintf(&sb, "%s (%s): %s", r.File, r.Schema, verdict)

	for _, v := range r.Violations {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  [%s] %s: %s", v.Kind, v.Path, v.Message)
		if v.Location != "" {
			fmt.Fprintf(&sb, " (%s)", v.Location)
		}
	}

	return sb.String()
}

// Formatter formats command output.
type Formatter interface {
	FormatTo(w io.Writer, data interface{}) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct{}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TextFormatter{}
	}
}

// kindOrder is the display order used when summarizing violation kinds.
var kindOrder = []schemaerrors.Kind{
	schemaerrors.KindMissingKey,
	schemaerrors.KindUnlistedCategory,
	schemaerrors.KindUndeclaredCategory,
	schemaerrors.KindTypeMismatch,
	schemaerrors.KindLengthMismatch,
	schemaerrors.KindInvalidEnum,
	schemaerrors.KindMissingDefault,
}

// SummarizeKinds renders a "kind=count" summary of a violation list in
// a stable order.
func SummarizeKinds(vl *schemaerrors.ViolationList) string {
	var parts []string
	for _, kind := range kindOrder {
		if n := len(vl.ByKind(kind)); n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	return strings.Join(parts, " ")
}
