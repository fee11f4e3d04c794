package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marbl-hq/marlin/pkg/schema/validator"
)

// Schema values for the Run.Schema field.
const (
	SchemaSettings    = "settings"
	SchemaDiagnostics = "diagnostics"
)

// Run is one recorded validation run.
type Run struct {
	// ID is a generated unique identifier for the run.
	ID string `json:"id"`

	// Schema is the dictionary kind validated: "settings" or
	// "diagnostics".
	Schema string `json:"schema"`

	// File is the path of the validated file.
	File string `json:"file"`

	// Consistent is the aggregate verdict of the run.
	Consistent bool `json:"consistent"`

	// Violations is the number of violations recorded during the run.
	Violations int `json:"violations"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at"`
}

// NewRun builds a Run record from a validation result.
func NewRun(schema, file string, res *validator.Result) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Schema:     schema,
		File:       file,
		Consistent: res.Consistent,
		Violations: res.Violations.Count(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Query filters a run listing. Zero-valued fields match everything.
type Query struct {
	// Schema restricts results to one dictionary kind.
	Schema string

	// File restricts results to runs of one file path.
	File string

	// Since restricts results to runs at or after this time.
	Since *time.Time

	// Limit caps the number of returned runs (0 means no cap).
	Limit int
}

// Store persists validation runs.
type Store interface {
	// Record stores one run.
	Record(ctx context.Context, run *Run) error

	// List returns runs matching the query, newest first.
	List(ctx context.Context, query *Query) ([]*Run, error)

	// Close releases the store's resources.
	Close() error
}

// StorageError wraps a backend failure with its operation.
type StorageError struct {
	Backend   string
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage %s: %s failed: %v", e.Backend, e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a StorageError.
func NewStorageError(backend, operation string, err error) *StorageError {
	return &StorageError{Backend: backend, Operation: operation, Err: err}
}
