// Package validator implements the schema-consistency checks for MARBL
// settings and diagnostics dictionaries.
//
// Two independent, stateless validators are provided:
//
//   - SettingsValidator checks the hierarchical parameter definitions:
//     _order bookkeeping, per-variable descriptive fields, and one level of
//     derived-type nesting.
//   - DiagnosticsValidator checks the flat diagnostic-variable metadata:
//     required fields, frequency/operator pairing rules, and the allowed
//     frequency and operator values.
//
// Both share VariableFieldChecker, which validates the mandatory fields of
// a single variable description.
//
// Every violation is logged at the point of detection with the message
// wording the MARBL tool-chain has always emitted, and is also recorded in
// the returned Result so callers can inspect violations programmatically.
// The aggregate boolean is the verdict downstream tooling acts on.
package validator
