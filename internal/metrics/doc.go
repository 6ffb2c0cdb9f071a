// Package metrics collects run metrics: Prometheus counters for checked
// vectors and suite durations, and Go runtime memory readings.
package metrics
