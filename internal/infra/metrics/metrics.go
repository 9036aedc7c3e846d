// Package metrics exposes Prometheus instrumentation for the phonebook use cases.
package metrics

import (
	"net/http"
	"time"

	"phonebook/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels a successful operation.
const OutcomeOK = service.OutcomeOK

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Operation outcomes by operation and error code
	Operations *prometheus.CounterVec

	// Operation latency by operation
	OperationLatency *prometheus.HistogramVec

	// Events that could not be delivered, by event type
	PublishFailures *prometheus.CounterVec
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New creates and registers all phonebook metrics on the registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebook_operations_total",
			Help: "Total phonebook operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phonebook_operation_duration_seconds",
			Help:    "Duration of phonebook operations including the storage round trips",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		PublishFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebook_event_publish_failures_total",
			Help: "Entry events that could not be published",
		}, []string{"type"}),
	}
}

// NewRecorder adapts Metrics to the domain recorder interface.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// ObserveOperation records an operation outcome and its latency.
func (m *Metrics) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObservePublishFailure records an undelivered entry event.
func (m *Metrics) ObservePublishFailure(eventType service.EntryEventType) {
	if m == nil {
		return
	}
	m.PublishFailures.WithLabelValues(string(eventType)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
