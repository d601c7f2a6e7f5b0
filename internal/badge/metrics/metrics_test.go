package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementBadgesMinted()
	m.IncrementBadgesAwarded()
	m.IncrementBadgesAwarded()
	m.IncrementRejected("award", "already_awarded")
	m.IncrementEventsPublished(3)
	m.SetOutboxPending(4)
	m.ObserveAward(time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BadgesMinted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BadgesAwarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WritesRejected.WithLabelValues("award", "already_awarded")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EventsPublished))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.OutboxPending))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementBadgesMinted()
		m.IncrementBadgesAwarded()
		m.IncrementRejected("mint", "duplicate_badge")
		m.IncrementEventsPublished(1)
		m.IncrementPublishFailures()
		m.SetOutboxPending(0)
		m.ObserveAward(time.Now())
	})
}
