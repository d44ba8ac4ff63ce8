// Package metrics holds the prometheus collectors describing sync runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/scale-sync/models"
)

const namespace = "scale_sync"

// run outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeBusy      = "busy"
	OutcomeTimeout   = "timeout"
	TriggerAutomatic = "automatic"
	TriggerManual    = "manual"
)

// Metrics is the set of sync collectors. Build it once per registry.
type Metrics struct {
	runs           *prometheus.CounterVec
	recordsWritten *prometheus.CounterVec
	writeFailures  *prometheus.CounterVec
	dedupDegraded  prometheus.Counter
	lastSuccess    prometheus.Gauge
	runDuration    prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of finished sync runs grouped by outcome and trigger.",
		}, []string{"outcome", "trigger"}),
		recordsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_written_total",
			Help:      "Number of health records written to the store per kind.",
		}, []string{"kind"}),
		writeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_failures_total",
			Help:      "Number of failed per-kind batch writes.",
		}, []string{"kind"}),
		dedupDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dedup_degraded_total",
			Help:      "Number of runs that wrote without dedup because the health store read failed.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the most recent successful sync run.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of sync runs.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
	}

	if reg != nil {
		reg.MustRegister(m.runs, m.recordsWritten, m.writeFailures, m.dedupDegraded, m.lastSuccess, m.runDuration)
	}
	return m
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(outcome string, result models.SyncResult) {
	m.runs.WithLabelValues(outcome, trigger(result.IsAutomatic)).Inc()

	if !result.StartedAt.IsZero() && !result.FinishedAt.IsZero() {
		m.runDuration.Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
	}
	if outcome == OutcomeSuccess {
		RecordSuccess(m.lastSuccess, result.FinishedAt)
	}
}

func (m *Metrics) RecordsWritten(kind models.RecordKind, n int) {
	if n <= 0 {
		return
	}
	m.recordsWritten.WithLabelValues(string(kind)).Add(float64(n))
}

func (m *Metrics) WriteFailed(kind models.RecordKind) {
	m.writeFailures.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) DedupDegraded() {
	m.dedupDegraded.Inc()
}

// RecordSuccess moves the watermark gauge; zero times are ignored.
func RecordSuccess(g prometheus.Gauge, ts time.Time) {
	if ts.IsZero() {
		return
	}
	g.Set(float64(ts.Unix()))
}

func trigger(isAutomatic bool) string {
	if isAutomatic {
		return TriggerAutomatic
	}
	return TriggerManual
}
