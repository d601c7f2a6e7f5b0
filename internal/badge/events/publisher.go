package events

import (
	"context"
	"log/slog"

	"badgeregistry/internal/badge/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks Publisher

// Publisher delivers one outbox entry. Implementations must be safe to call
// again with an entry that was already delivered.
type Publisher interface {
	Publish(ctx context.Context, entry models.OutboxEntry) error
}

// LogPublisher writes events to the structured log. It is the default when
// no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, entry models.OutboxEntry) error {
	p.logger.InfoContext(ctx, LogPrefix+string(entry.Payload),
		"event_id", entry.ID.String(),
		"event_type", entry.EventType,
		"log_type", "event",
	)
	return nil
}
