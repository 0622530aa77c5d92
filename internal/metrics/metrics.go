// Package metrics provides Prometheus metrics for transcription runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "standup_scribe"

// Metrics holds the collectors for one registry. A nil *Metrics records nothing.
type Metrics struct {
	// Run metrics
	RunsTotal   *prometheus.CounterVec
	RunsActive  prometheus.Gauge
	RunDuration prometheus.Histogram

	// Chunk metrics
	ChunksTotal *prometheus.CounterVec

	// Summary metrics
	TokensTotal *prometheus.CounterVec

	// Remote call metrics
	RemoteLatency *prometheus.HistogramVec
	RemoteErrors  *prometheus.CounterVec
}

// DefaultMetrics is registered with the default Prometheus registry.
var DefaultMetrics = New(prometheus.DefaultRegisterer)

// New creates and registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of pipeline runs by outcome",
		}, []string{"outcome"}),
		RunsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "runs_active",
			Help:      "Number of pipeline runs in progress",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of pipeline runs",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600, 1200, 2400},
		}),

		ChunksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_total",
			Help:      "Audio chunks processed by outcome",
		}, []string{"outcome"}),

		TokensTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_tokens_total",
			Help:      "Tokens consumed by summary generation",
		}, []string{"kind"}),

		RemoteLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of remote API calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 180, 600},
		}, []string{"service"}),
		RemoteErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_call_errors_total",
			Help:      "Failed remote API calls",
		}, []string{"service"}),
	}
}

// RunStarted increments the active gauge. Pair with RecordRun.
func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.RunsActive.Inc()
}

// RecordRun records a finished run. outcome is "success", "partial" or "failed".
func (m *Metrics) RecordRun(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsActive.Dec()
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(d.Seconds())
}

// RecordChunk records one chunk attempt. outcome is "ok", "failed" or "resplit".
func (m *Metrics) RecordChunk(outcome string) {
	if m == nil {
		return
	}
	m.ChunksTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordTokens(prompt, completion int) {
	if m == nil {
		return
	}
	m.TokensTotal.WithLabelValues("prompt").Add(float64(prompt))
	m.TokensTotal.WithLabelValues("completion").Add(float64(completion))
}

// RecordRemoteCall records latency and, when err is non-nil, an error for service.
func (m *Metrics) RecordRemoteCall(service string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.RemoteLatency.WithLabelValues(service).Observe(d.Seconds())
	if err != nil {
		m.RemoteErrors.WithLabelValues(service).Inc()
	}
}
