// Package parser decodes settings and diagnostics files into ast value
// trees.
//
// Decoding goes through yaml.Node rather than map[string]interface{} so
// that mapping key order and source line numbers survive into the tree.
// JSON input is accepted as well, since YAML is a superset of JSON.
package parser
