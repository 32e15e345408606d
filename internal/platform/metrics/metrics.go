package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the catalog service. Methods are
// nil-safe so tests can pass a nil *Metrics and skip registration entirely.
type Metrics struct {
	// HTTP request counts and latencies by route pattern and status class.
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec

	// Detail lookups that resolved to nothing, by entity kind.
	LookupMisses *prometheus.CounterVec

	// Seed runs by outcome ("seeded", "skipped", "failed").
	SeedRuns *prometheus.CounterVec
}

// New creates and registers all catalog service metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinelles_http_requests_total",
			Help: "Total HTTP requests by route pattern and status code",
		}, []string{"route", "status"}),

		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sentinelles_http_request_duration_seconds",
			Help:    "HTTP request duration by route pattern",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),

		LookupMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinelles_lookup_misses_total",
			Help: "Detail lookups that resolved to no verified record, by entity kind",
		}, []string{"kind"}),

		SeedRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinelles_seed_runs_total",
			Help: "Seed invocations by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(route, status).Inc()
		m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// IncrementLookupMiss records a detail lookup that found nothing.
func (m *Metrics) IncrementLookupMiss(kind string) {
	if m != nil {
		m.LookupMisses.WithLabelValues(kind).Inc()
	}
}

// IncrementSeedRun records a seed invocation outcome.
func (m *Metrics) IncrementSeedRun(outcome string) {
	if m != nil {
		m.SeedRuns.WithLabelValues(outcome).Inc()
	}
}
