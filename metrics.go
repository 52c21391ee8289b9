package ringqueue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/timzifer/ringqueue/internal/telemetry"
)

// DefaultMetrics returns the counters queues report to unless WithMetrics
// says otherwise.
func DefaultMetrics() *Metrics {
	return telemetry.Default()
}

// NewCollector exports DefaultMetrics to Prometheus under namespace.
func NewCollector(namespace string) prometheus.Collector {
	return telemetry.NewCollector(telemetry.Default(), namespace)
}

// NewMetricsCollector exports m to Prometheus under namespace.
func NewMetricsCollector(m *Metrics, namespace string) prometheus.Collector {
	return telemetry.NewCollector(m, namespace)
}
