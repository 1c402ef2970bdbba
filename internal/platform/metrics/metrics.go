// Package metrics records quote store operation outcomes with Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for operation counters.
const (
	OutcomeOK               = "ok"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeEmpty            = "empty"
	OutcomeNotFound         = "not_found"
	OutcomeNoMatch          = "no_match"
	OutcomeError            = "error"
)

// Metrics holds the collectors for one session on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	stored     prometheus.Gauge
}

// New creates and registers the session collectors.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Quote store operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored",
			Help:      "Number of quotes currently held in the store.",
		}),
	}

	m.registry.MustRegister(m.operations, m.stored)

	return m
}

// ObserveOperation counts one operation with its outcome.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(operation, outcome).Inc()
}

// SetStored records the current store size.
func (m *Metrics) SetStored(n int) {
	if m == nil {
		return
	}

	m.stored.Set(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all collected metrics in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
