// Package telemetry counts queue operations and exports the counts to
// Prometheus.
package telemetry
