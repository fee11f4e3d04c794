package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"marbl-hq/marlin/pkg/config"
)

// Collector owns the Prometheus registry and all marlin metrics.
type Collector struct {
	registry *prometheus.Registry

	validation *ValidationMetrics
}

// NewCollector creates a collector with a fresh registry. Passing a nil
// registry creates one with the standard Go runtime and process
// collectors registered.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return &Collector{
		registry:   registry,
		validation: NewValidationMetrics(cfg, registry),
	}
}

// Validation returns the validation metrics group.
func (c *Collector) Validation() *ValidationMetrics {
	return c.validation
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
