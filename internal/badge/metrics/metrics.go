package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the badge registry.
// Tracks catalog and ledger writes, rejected writes and event relay health.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	BadgesMinted    prometheus.Counter
	BadgesAwarded   prometheus.Counter
	WritesRejected  *prometheus.CounterVec
	EventsPublished prometheus.Counter
	PublishFailures prometheus.Counter
	OutboxPending   prometheus.Gauge
	AwardDuration   prometheus.Histogram
}

// New registers the badge metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		BadgesMinted: f.NewCounter(prometheus.CounterOpts{
			Name: "badges_minted_total",
			Help: "Total number of badge definitions added to the catalog",
		}),
		BadgesAwarded: f.NewCounter(prometheus.CounterOpts{
			Name: "badges_awarded_total",
			Help: "Total number of badges awarded to accounts",
		}),
		WritesRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "badges_writes_rejected_total",
			Help: "Mint and award calls rejected, by operation and error code",
		}, []string{"operation", "code"}),
		EventsPublished: f.NewCounter(prometheus.CounterOpts{
			Name: "badges_events_published_total",
			Help: "Outbox events delivered to the event publisher",
		}),
		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "badges_event_publish_failures_total",
			Help: "Outbox events that failed to publish and stay pending",
		}),
		OutboxPending: f.NewGauge(prometheus.GaugeOpts{
			Name: "badges_outbox_pending",
			Help: "Pending outbox entries seen by the last relay pass",
		}),
		AwardDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "badges_award_duration_seconds",
			Help:    "Duration of award transactions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementBadgesMinted() {
	if m == nil {
		return
	}
	m.BadgesMinted.Inc()
}

func (m *Metrics) IncrementBadgesAwarded() {
	if m == nil {
		return
	}
	m.BadgesAwarded.Inc()
}

// IncrementRejected records a failed write for operation ("mint" or "award").
func (m *Metrics) IncrementRejected(operation, code string) {
	if m == nil {
		return
	}
	m.WritesRejected.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) IncrementEventsPublished(n int) {
	if m == nil {
		return
	}
	m.EventsPublished.Add(float64(n))
}

func (m *Metrics) IncrementPublishFailures() {
	if m == nil {
		return
	}
	m.PublishFailures.Inc()
}

func (m *Metrics) SetOutboxPending(n int) {
	if m == nil {
		return
	}
	m.OutboxPending.Set(float64(n))
}

// ObserveAward records the duration of an award transaction.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveAward(start time.Time) {
	if m == nil {
		return
	}
	m.AwardDuration.Observe(time.Since(start).Seconds())
}
