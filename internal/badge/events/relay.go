package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"badgeregistry/internal/badge/metrics"
	"badgeregistry/internal/badge/models"
	"badgeregistry/pkg/platform/circuit"
)

//go:generate mockgen -source=relay.go -destination=mocks/outbox_mock.go -package=mocks Outbox

// Outbox is the store side of the relay.
type Outbox interface {
	// PendingOutbox returns up to limit unpublished entries, oldest first.
	PendingOutbox(ctx context.Context, limit int) ([]models.OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

const (
	defaultPollInterval = time.Second
	defaultBatchSize    = 100
)

// Relay moves committed events from the outbox to a Publisher. Delivery is
// at-least-once and in outbox order: a pass stops at the first failure so a
// later event is never delivered ahead of an earlier one.
type Relay struct {
	outbox    Outbox
	publisher Publisher
	breaker   *circuit.Breaker
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type RelayOption func(*Relay)

func WithPollInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

func WithBreaker(b *circuit.Breaker) RelayOption {
	return func(r *Relay) {
		if b != nil {
			r.breaker = b
		}
	}
}

func WithRelayLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithRelayMetrics(m *metrics.Metrics) RelayOption {
	return func(r *Relay) {
		r.metrics = m
	}
}

func NewRelay(outbox Outbox, publisher Publisher, opts ...RelayOption) *Relay {
	r := &Relay{
		outbox:    outbox,
		publisher: publisher,
		breaker:   circuit.New("event-publisher"),
		interval:  defaultPollInterval,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.Drain(ctx); err != nil && ctx.Err() == nil {
			r.logger.WarnContext(ctx, "outbox relay pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Drain runs one relay pass and returns how many entries were published.
func (r *Relay) Drain(ctx context.Context) (int, error) {
	if !r.breaker.Allow() {
		return 0, nil
	}

	pending, err := r.outbox.PendingOutbox(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	r.metrics.SetOutboxPending(len(pending))
	if len(pending) == 0 {
		return 0, nil
	}

	published := make([]uuid.UUID, 0, len(pending))
	var publishErr error
	for _, entry := range pending {
		if publishErr = r.publisher.Publish(ctx, entry); publishErr != nil {
			r.metrics.IncrementPublishFailures()
			if _, change := r.breaker.RecordFailure(); change.Opened {
				r.logger.WarnContext(ctx, "event publisher circuit opened", "breaker", r.breaker.Name())
			}
			break
		}
		if _, change := r.breaker.RecordSuccess(); change.Closed {
			r.logger.InfoContext(ctx, "event publisher circuit closed", "breaker", r.breaker.Name())
		}
		published = append(published, entry.ID)
	}

	if len(published) > 0 {
		if err := r.outbox.MarkPublished(ctx, published, r.now()); err != nil {
			return 0, err
		}
		r.metrics.IncrementEventsPublished(len(published))
	}
	return len(published), publishErr
}
