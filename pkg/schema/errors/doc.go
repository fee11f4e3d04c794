// Package errors provides structured violation records for schema
// validation.
//
// Validators log every violation at the point of detection and also record
// it in a ViolationList, so callers get both the aggregate verdict and a
// machine-inspectable account of what went wrong. The list accumulates;
// validation never stops at the first violation.
package errors
