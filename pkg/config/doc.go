// Package config loads, defaults, and validates the marlin tool
// configuration.
//
// Configuration comes from an optional YAML file with environment
// variable overrides (MARLIN_SECTION_FIELD). The file controls the
// ambient concerns of the tool (logging, the metrics endpoint, the run
// history store, and watch behavior), not the schemas being validated.
package config
