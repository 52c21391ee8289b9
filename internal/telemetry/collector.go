package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports Metrics to Prometheus. Values are read at scrape time.
type Collector struct {
	m        *Metrics
	ops      *prometheus.Desc
	duration *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(m *Metrics, namespace string) *Collector {
	return &Collector{
		m: m,
		ops: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "operations_total"),
			"Number of queue operations by kind.",
			[]string{"op"}, nil,
		),
		duration: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "operation_seconds_total"),
			"Time spent in timed queue operations.",
			[]string{"op"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.ops
	ch <- c.duration
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, op := range Ops() {
		ch <- prometheus.MustNewConstMetric(c.ops, prometheus.CounterValue,
			float64(c.m.Count(op)), op.String())
	}
	for _, op := range []Op{OpSort, OpMerge} {
		seconds := float64(c.m.durations[op].Load()) / 1e9
		ch <- prometheus.MustNewConstMetric(c.duration, prometheus.CounterValue,
			seconds, op.String())
	}
}
