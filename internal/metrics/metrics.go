// Package metrics exposes Prometheus instrumentation for the aggregation
// store service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	LogUpserts           *prometheus.CounterVec
	ValidationRejections prometheus.Counter
	MonitorBroadcasts    prometheus.Counter
	UpsertDuration       prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered on a
// private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LogUpserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "examwatch_log_upserts_total",
				Help: "Cheating log upserts by outcome.",
			},
			[]string{"outcome"},
		),
		ValidationRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "examwatch_validation_rejections_total",
				Help: "Submissions rejected for missing exam id or identity.",
			},
		),
		MonitorBroadcasts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "examwatch_monitor_broadcasts_total",
				Help: "Records broadcast to live monitor subscribers.",
			},
		),
		UpsertDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "examwatch_upsert_duration_seconds",
				Help:    "Latency of cheating log upserts.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.LogUpserts,
		m.ValidationRejections,
		m.MonitorBroadcasts,
		m.UpsertDuration,
	)

	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
