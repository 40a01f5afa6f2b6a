// Package metrics exposes benchmark trials as Prometheus metrics written
// to a file in the node_exporter textfile format. Nothing listens on the
// network.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-vecbench/bench"
)

const namespace = "vecbench"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	KernelDuration    *prometheus.HistogramVec
	LastDuration      *prometheus.GaugeVec
	ElementsPerSecond *prometheus.GaugeVec
	Trials            *prometheus.CounterVec
	ArraySize         prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.KernelDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kernel_duration_seconds",
			Help:      "Wall-clock duration of one elementwise kernel pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
		[]string{"op", "backend"},
	)

	m.LastDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_duration_seconds",
			Help:      "Duration of the most recent successful trial.",
		},
		[]string{"op", "backend"},
	)

	m.ElementsPerSecond = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elements_per_second",
			Help:      "Kernel throughput of the most recent successful trial.",
		},
		[]string{"op", "backend"},
	)

	m.Trials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Trials run, by outcome.",
		},
		[]string{"op", "status"},
	)

	m.ArraySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "array_elements",
			Help:      "Length of the arrays of the most recent trial.",
		},
	)

	m.registry.MustRegister(
		m.KernelDuration,
		m.LastDuration,
		m.ElementsPerSecond,
		m.Trials,
		m.ArraySize,
	)

	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one trial.
func (m *Metrics) Observe(t bench.Trial) {
	op := t.Op.String()

	if t.Err != nil {
		m.Trials.WithLabelValues(op, "error").Inc()
		return
	}
	m.Trials.WithLabelValues(op, "ok").Inc()

	seconds := t.Seconds()
	m.KernelDuration.WithLabelValues(op, t.Backend).Observe(seconds)
	m.LastDuration.WithLabelValues(op, t.Backend).Set(seconds)
	if seconds > 0 {
		m.ElementsPerSecond.WithLabelValues(op, t.Backend).Set(float64(t.Size) / seconds)
	}
	m.ArraySize.Set(float64(t.Size))
}

// WriteTextfile writes all metrics to path atomically, for a
// node_exporter textfile collector to pick up.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
