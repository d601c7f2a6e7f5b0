package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"badgeregistry/internal/badge/events"
	"badgeregistry/internal/badge/metrics"
	"badgeregistry/internal/badge/models"
	dErrors "badgeregistry/pkg/domain-errors"
	"badgeregistry/pkg/platform/sentinel"
	"badgeregistry/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks Store,Authorizer,MetadataCache

// Store is the persistence port. RecordAward is the only ledger mutation and
// applies all of an award's effects together.
type Store interface {
	CreateBadge(ctx context.Context, badge *models.Badge) error
	FindBadge(ctx context.Context, id models.BadgeID) (*models.Badge, error)
	FindBadges(ctx context.Context, ids []models.BadgeID) (map[models.BadgeID]*models.Badge, error)
	CountBadges(ctx context.Context) (int, error)
	ListBadges(ctx context.Context, w models.Window) ([]*models.Badge, error)

	IsIssued(ctx context.Context, tokenID models.TokenID) (bool, error)
	RecordAward(ctx context.Context, award models.Award) error
	CountTokens(ctx context.Context) (int, error)
	ListIssued(ctx context.Context, w models.Window) ([]models.TokenID, error)
	OwnerBadges(ctx context.Context, owner models.AccountID) ([]models.BadgeID, error)

	ContractMetadata(ctx context.Context) (*models.ContractMetadata, error)
	InitContractMetadata(ctx context.Context, metadata models.ContractMetadata) error
}

// Authorizer decides whether a caller may mint and award badges.
type Authorizer interface {
	IsAuthorized(ctx context.Context, caller models.AccountID) bool
}

// MetadataCache is an optional read-through cache for contract metadata.
type MetadataCache interface {
	Get(ctx context.Context) (*models.ContractMetadata, bool, error)
	Set(ctx context.Context, metadata models.ContractMetadata) error
}

// Service owns the badge catalog, the award ledger and their views.
type Service struct {
	store   Store
	tx      StoreTx
	auth    Authorizer
	cache   MetadataCache
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTx replaces the default in-process transaction, e.g. with a database
// transaction over the same store.
func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		if tx != nil {
			s.tx = tx
		}
	}
}

func WithMetadataCache(c MetadataCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New constructs a Service.
func New(store Store, auth Authorizer, opts ...Option) *Service {
	s := &Service{
		store:  store,
		auth:   auth,
		tracer: otel.Tracer("badgeregistry/internal/badge/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = NewInMemoryTx(store)
	}
	return s
}

// Mint adds a badge definition to the catalog. The copies count always
// starts at zero whatever the request carries.
func (s *Service) Mint(ctx context.Context, caller models.AccountID, req *models.MintBadgeRequest) (badge *models.Badge, err error) {
	ctx, span := s.tracer.Start(ctx, "badge.Mint")
	defer func() { s.endSpan(span, "mint", err) }()

	if err := s.authorize(ctx, caller); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	id, err := models.ParseBadgeID(req.BadgeID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("badge.id", id.String()))

	badge = models.NewBadge(id, req.BadgeMetadata)
	err = s.tx.RunInTx(ctx, func(ctx context.Context, store Store) error {
		if err := store.CreateBadge(ctx, badge); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeDuplicateBadge, "badge already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create badge")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementBadgesMinted()
	s.logAudit(ctx, "badge_minted", "badge_id", id.String(), "actor_id", caller.String())
	return badge.Clone(), nil
}

// Reward awards an existing badge to receiver and returns the new token id.
// The mint event is written to the outbox in the same transaction.
func (s *Service) Reward(ctx context.Context, caller models.AccountID, badgeID string, req *models.RewardRequest) (tokenID models.TokenID, err error) {
	ctx, span := s.tracer.Start(ctx, "badge.Reward")
	defer func() { s.endSpan(span, "award", err) }()

	if err := s.authorize(ctx, caller); err != nil {
		return "", err
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}
	owner, err := models.ParseAccountID(req.ReceiverAccountID)
	if err != nil {
		return "", err
	}

	award := models.NewAward(models.BadgeID(badgeID), owner)
	span.SetAttributes(attribute.String("badge.id", badgeID), attribute.String("badge.token_id", string(award.TokenID)))
	award.Event, err = events.NewMint(owner, award.TokenID, req.Memo).OutboxEntry(requestcontext.Now(ctx))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to build mint event")
	}

	defer s.metrics.ObserveAward(time.Now())

	err = s.tx.RunInTx(ctx, func(ctx context.Context, store Store) error {
		if _, err := store.FindBadge(ctx, award.BadgeID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeUnknownBadge, "badge does not exist")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
		}
		issued, err := store.IsIssued(ctx, award.TokenID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check issued token")
		}
		if issued {
			return dErrors.New(dErrors.CodeAlreadyAwarded, "badge already awarded to this account")
		}
		if err := store.RecordAward(ctx, award); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				return dErrors.New(dErrors.CodeAlreadyAwarded, "badge already awarded to this account")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeUnknownBadge, "badge does not exist")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record award")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.metrics.IncrementBadgesAwarded()
	s.logAudit(ctx, "badge_awarded",
		"badge_id", badgeID,
		"owner_id", owner.String(),
		"token_id", string(award.TokenID),
		"actor_id", caller.String(),
	)
	return award.TokenID, nil
}

// Transfer always fails: badges are bound to the account they were awarded to.
func (s *Service) Transfer(ctx context.Context, req *models.TransferRequest) error {
	return s.rejectTransfer(ctx, "nft_transfer", req)
}

func (s *Service) TransferCall(ctx context.Context, req *models.TransferRequest) error {
	return s.rejectTransfer(ctx, "nft_transfer_call", req)
}

func (s *Service) ResolveTransfer(ctx context.Context, req *models.TransferRequest) error {
	return s.rejectTransfer(ctx, "nft_resolve_transfer", req)
}

func (s *Service) rejectTransfer(ctx context.Context, op string, req *models.TransferRequest) error {
	if s.logger != nil {
		attrs := []any{"operation", op}
		if req != nil {
			attrs = append(attrs, "token_id", req.TokenID, "receiver_id", req.ReceiverID)
		}
		if requestID := requestcontext.RequestID(ctx); requestID != "" {
			attrs = append(attrs, "request_id", requestID)
		}
		s.logger.WarnContext(ctx, "transfer rejected", attrs...)
	}
	return dErrors.New(dErrors.CodeTransfersDisabled, "NFT transfers is not allowed for badges")
}

func (s *Service) authorize(ctx context.Context, caller models.AccountID) error {
	if caller == "" || s.auth == nil || !s.auth.IsAuthorized(ctx, caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not a moderator")
	}
	return nil
}

func (s *Service) endSpan(span trace.Span, operation string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		s.metrics.IncrementRejected(operation, string(dErrors.CodeOf(err)))
	}
	span.End()
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}
