package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mulcheck"

// SuiteSample is what a finished suite contributes to the metrics.
type SuiteSample struct {
	Width    int
	Strategy string
	Kind     string
	Passed   int
	Failed   int
	Duration time.Duration
}

// Metrics holds the collectors of one run in a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	vectors       *prometheus.CounterVec
	suiteDuration *prometheus.HistogramVec
	activeSuites  prometheus.Gauge
	handler       http.Handler
}

// NewMetrics creates and registers the run collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		vectors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_total",
			Help:      "Checked multiplication vectors by outcome.",
		}, []string{"width", "strategy", "kind", "result"}),
		suiteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "suite_duration_seconds",
			Help:      "Wall time of a verification suite.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"width", "strategy", "kind"}),
		activeSuites: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_suites",
			Help:      "Suites currently running.",
		}),
	}
	m.registry.MustRegister(
		m.vectors,
		m.suiteDuration,
		m.activeSuites,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// SuiteStarted marks a suite as running.
func (m *Metrics) SuiteStarted() {
	if m == nil {
		return
	}
	m.activeSuites.Inc()
}

// SuiteFinished records a finished suite.
func (m *Metrics) SuiteFinished(s SuiteSample) {
	if m == nil {
		return
	}
	m.activeSuites.Dec()
	w := strconv.Itoa(s.Width)
	m.vectors.WithLabelValues(w, s.Strategy, s.Kind, "pass").Add(float64(s.Passed))
	m.vectors.WithLabelValues(w, s.Strategy, s.Kind, "fail").Add(float64(s.Failed))
	m.suiteDuration.WithLabelValues(w, s.Strategy, s.Kind).Observe(s.Duration.Seconds())
}

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// WriteTextfile writes the metrics to path in the node exporter textfile
// format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
