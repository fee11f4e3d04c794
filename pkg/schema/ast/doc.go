// Package ast defines the value tree that parsed settings and diagnostics
// documents are decoded into.
//
// MARBL configuration files are dynamically shaped: a variable's datatype
// may be a scalar type name or a mapping of sub-variables, a default_value
// may be a scalar or a keyed mapping, and frequency/operator fields may be
// scalars or sequences. Rather than probing interface{} shapes throughout
// the validators, the tree is decoded once into Value nodes tagged with a
// Kind, and validation logic branches on the tag.
//
// Mappings preserve document key order, which matters both for the _order
// bookkeeping in settings files and for deterministic log output.
package ast
