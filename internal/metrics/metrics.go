// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeStale     = "stale"
	OutcomeConflict  = "conflict"
	OutcomeAbandoned = "abandoned"
)

// Recorder holds the sync collectors. A nil *Recorder records nothing.
type Recorder struct {
	fetches   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	dropped   *prometheus.CounterVec
	mutations *prometheus.CounterVec
}

// New registers the sync collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sync_fetch_total",
			Help: "Authoritative fetches by collection and outcome.",
		}, []string{"collection", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sync_fetch_duration_seconds",
			Help:    "Latency of authoritative fetches.",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sync_records_dropped_total",
			Help: "Payload entries dropped during normalization.",
		}, []string{"entity"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sync_mutations_total",
			Help: "Write operations by action and outcome.",
		}, []string{"action", "outcome"}),
	}
	reg.MustRegister(r.fetches, r.duration, r.dropped, r.mutations)
	return r
}

func (r *Recorder) Fetch(collection, outcome string, took time.Duration) {
	if r == nil {
		return
	}
	r.fetches.WithLabelValues(collection, outcome).Inc()
	r.duration.WithLabelValues(collection).Observe(took.Seconds())
}

func (r *Recorder) Dropped(entity string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.dropped.WithLabelValues(entity).Add(float64(n))
}

func (r *Recorder) Mutation(action, outcome string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(action, outcome).Inc()
}
