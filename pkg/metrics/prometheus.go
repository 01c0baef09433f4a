package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamCalls *prometheus.CounterVec
	pagesFetched  prometheus.Counter
	truncated     prometheus.Counter
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a recorder registered on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		upstreamCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tronlens_upstream_requests_total",
				Help: "Requests sent to the explorer API",
			},
			[]string{"endpoint", "result"},
		),
		pagesFetched: f.NewCounter(
			prometheus.CounterOpts{
				Name: "tronlens_transfer_pages_total",
				Help: "Transfer pages fetched by the pagination pipeline",
			},
		),
		truncated: f.NewCounter(
			prometheus.CounterOpts{
				Name: "tronlens_truncated_fetches_total",
				Help: "Pagination runs that stopped on a failed page",
			},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tronlens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tronlens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordUpstreamCall counts one explorer request by endpoint and result (ok|error).
func (r *Recorder) RecordUpstreamCall(endpoint, result string) {
	r.upstreamCalls.WithLabelValues(endpoint, result).Inc()
}

// RecordPages adds n fetched transfer pages.
func (r *Recorder) RecordPages(n int) {
	r.pagesFetched.Add(float64(n))
}

// RecordTruncated counts a pagination run that ended on an error.
func (r *Recorder) RecordTruncated() {
	r.truncated.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) RecordUpstreamCall(string, string) {}
func (Nop) RecordPages(int)                   {}
func (Nop) RecordTruncated()                  {}
func (Nop) RecordError(string)                {}
func (Nop) RecordLatency(string, float64)     {}
