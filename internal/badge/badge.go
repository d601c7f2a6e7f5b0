package badge

import (
	"log/slog"
	"time"

	"badgeregistry/internal/badge/events"
	"badgeregistry/internal/badge/handler"
	"badgeregistry/internal/badge/metrics"
	"badgeregistry/internal/badge/models"
	"badgeregistry/internal/badge/service"
	"badgeregistry/internal/badge/store"
	platformmetrics "badgeregistry/internal/platform/metrics"
	"badgeregistry/internal/platform/middleware"
)

// Service exposes the badge catalog, the award ledger and the token views.
type Service = service.Service

// Handler wires HTTP endpoints to the badge service.
type Handler = handler.Handler

// Relay forwards committed mint events to a publisher.
type Relay = events.Relay

// Store is a backend able to hold the ledger and its outbox.
type Store interface {
	service.Store
	events.Outbox
}

var (
	_ Store = (*store.InMemory)(nil)
	_ Store = (*store.PostgresStore)(nil)
)

// NewService constructs the badge service. A nil tx serializes writers in
// process, which is what the in-memory store needs.
func NewService(st Store, moderators []models.AccountID, tx service.StoreTx, logger *slog.Logger, m *metrics.Metrics, opts ...service.Option) *Service {
	opts = append([]service.Option{service.WithLogger(logger), service.WithMetrics(m)}, opts...)
	if tx != nil {
		opts = append(opts, service.WithTx(tx))
	}
	return service.New(st, service.NewModeratorList(moderators), opts...)
}

// NewHandler constructs the HTTP handler for the registry routes.
func NewHandler(s *Service, logger *slog.Logger, m *platformmetrics.Metrics, validator middleware.JWTValidator, requestTimeout time.Duration) *Handler {
	return handler.New(s, logger, m, validator, handler.WithRequestTimeout(requestTimeout))
}

// NewRelay constructs the outbox relay for st.
func NewRelay(st Store, publisher events.Publisher, pollInterval time.Duration, batchSize int, logger *slog.Logger, m *metrics.Metrics) *Relay {
	return events.NewRelay(st, publisher,
		events.WithPollInterval(pollInterval),
		events.WithBatchSize(batchSize),
		events.WithRelayLogger(logger),
		events.WithRelayMetrics(m),
	)
}
