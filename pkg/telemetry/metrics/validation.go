package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"marbl-hq/marlin/pkg/config"
	schemaerrors "marbl-hq/marlin/pkg/schema/errors"
	"marbl-hq/marlin/pkg/schema/validator"
)

// Schema labels the dictionary kind a validation run covered.
const (
	SchemaSettings    = "settings"
	SchemaDiagnostics = "diagnostics"
)

// ValidationMetrics tracks metrics for validation runs.
//
// Metrics:
//   - marlin_validation_runs_total: run count by schema and result
//   - marlin_validation_violations_total: violations by schema and kind
//   - marlin_validation_duration_seconds: run duration histogram by schema
type ValidationMetrics struct {
	runsTotal       *prometheus.CounterVec
	violationsTotal *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of validation runs",
			},
			[]string{"schema", "result"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "violations_total",
				Help:      "Total number of schema violations found",
			},
			[]string{"schema", "kind"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"schema"},
		),
	}

	registry.MustRegister(
		vm.runsTotal,
		vm.violationsTotal,
		vm.duration,
	)

	return vm
}

// ObserveRun records the outcome of one validation run.
func (vm *ValidationMetrics) ObserveRun(schema string, res *validator.Result, elapsed time.Duration) {
	result := "consistent"
	if !res.Consistent {
		result = "inconsistent"
	}
	vm.runsTotal.WithLabelValues(schema, result).Inc()

	for _, v := range res.Violations.Violations {
		vm.violationsTotal.WithLabelValues(schema, string(v.Kind)).Inc()
	}

	vm.duration.WithLabelValues(schema).Observe(elapsed.Seconds())
}

// ObserveViolationKind increments the violation counter for a single kind.
func (vm *ValidationMetrics) ObserveViolationKind(schema string, kind schemaerrors.Kind) {
	vm.violationsTotal.WithLabelValues(schema, string(kind)).Inc()
}
