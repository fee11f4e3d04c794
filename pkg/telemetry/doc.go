// Package telemetry groups the observability concerns of marlin:
// structured logging (telemetry/logging) and Prometheus metrics
// (telemetry/metrics).
package telemetry
