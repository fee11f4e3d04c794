// Package metrics exposes Prometheus metrics for validation runs.
//
// The watch daemon registers a Collector and serves its Handler on the
// configured listen address, letting operators alert on schema breakage
// in continuously re-validated working trees.
package metrics
