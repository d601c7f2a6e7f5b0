package store_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"badgeregistry/internal/badge/models"
	"badgeregistry/pkg/platform/sentinel"
)

// registryStore is the method set both implementations share.
type registryStore interface {
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
	PendingOutbox(ctx context.Context, limit int) ([]models.OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// storeBehaviorSuite runs the same behavioral checks against any store.
// Embedders set newStore in SetupTest.
type storeBehaviorSuite struct {
	suite.Suite
	store registryStore
}

var all = models.Window{Offset: 0, Limit: models.Unbounded}

func title(s string) *string { return &s }

func (s *storeBehaviorSuite) mint(id models.BadgeID) {
	s.Require().NoError(s.store.CreateBadge(context.Background(),
		models.NewBadge(id, models.BadgeMetadata{Title: title(string(id))})))
}

func (s *storeBehaviorSuite) award(badgeID models.BadgeID, owner models.AccountID) models.Award {
	a := models.NewAward(badgeID, owner)
	a.Event = models.OutboxEntry{
		ID:        uuid.New(),
		EventType: "nft_mint",
		Key:       string(owner),
		Payload:   []byte(`{"event":"nft_mint"}`),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	return a
}

func (s *storeBehaviorSuite) TestCreateBadge() {
	ctx := context.Background()

	s.Run("stores badge with zero copies", func() {
		s.mint("first_badge")

		got, err := s.store.FindBadge(ctx, "first_badge")
		s.Require().NoError(err)
		s.Equal(models.BadgeID("first_badge"), got.ID)
		s.Equal("first_badge", *got.Metadata.Title)
		s.Equal(uint64(0), got.Metadata.Copies)
	})

	s.Run("duplicate id is rejected and original kept", func() {
		err := s.store.CreateBadge(ctx, models.NewBadge("first_badge", models.BadgeMetadata{Title: title("Other")}))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)

		got, err := s.store.FindBadge(ctx, "first_badge")
		s.Require().NoError(err)
		s.Equal("first_badge", *got.Metadata.Title)
	})

	s.Run("unknown badge is not found", func() {
		_, err := s.store.FindBadge(ctx, "missing")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *storeBehaviorSuite) TestListBadgesInInsertionOrder() {
	ctx := context.Background()
	for _, id := range []models.BadgeID{"c", "a", "b"} {
		s.mint(id)
	}

	n, err := s.store.CountBadges(ctx)
	s.Require().NoError(err)
	s.Equal(3, n)

	page, err := s.store.ListBadges(ctx, models.Window{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(models.BadgeID("a"), page[0].ID)

	rest, err := s.store.ListBadges(ctx, models.Window{Offset: 1, Limit: models.Unbounded})
	s.Require().NoError(err)
	s.Require().Len(rest, 2)
	s.Equal(models.BadgeID("b"), rest[1].ID)

	found, err := s.store.FindBadges(ctx, []models.BadgeID{"a", "missing", "c"})
	s.Require().NoError(err)
	s.Len(found, 2)
	s.Contains(found, models.BadgeID("a"))
	s.Contains(found, models.BadgeID("c"))
}

func (s *storeBehaviorSuite) TestRecordAward() {
	ctx := context.Background()
	s.mint("first_badge")
	s.mint("second_badge")

	s.Require().NoError(s.store.RecordAward(ctx, s.award("first_badge", "alice")))
	s.Require().NoError(s.store.RecordAward(ctx, s.award("second_badge", "alice")))
	s.Require().NoError(s.store.RecordAward(ctx, s.award("first_badge", "bob")))

	s.Run("applies every effect", func() {
		badge, err := s.store.FindBadge(ctx, "first_badge")
		s.Require().NoError(err)
		s.Equal(uint64(2), badge.Metadata.Copies)

		issued, err := s.store.IsIssued(ctx, "first_badge:alice")
		s.Require().NoError(err)
		s.True(issued)

		count, err := s.store.CountTokens(ctx)
		s.Require().NoError(err)
		s.Equal(3, count)

		tokens, err := s.store.ListIssued(ctx, all)
		s.Require().NoError(err)
		s.Equal([]models.TokenID{"first_badge:alice", "second_badge:alice", "first_badge:bob"}, tokens)

		held, err := s.store.OwnerBadges(ctx, "alice")
		s.Require().NoError(err)
		s.Equal([]models.BadgeID{"first_badge", "second_badge"}, held)

		pending, err := s.store.PendingOutbox(ctx, 10)
		s.Require().NoError(err)
		s.Len(pending, 3)
	})

	s.Run("second award of the same pair changes nothing", func() {
		err := s.store.RecordAward(ctx, s.award("first_badge", "alice"))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)

		badge, err := s.store.FindBadge(ctx, "first_badge")
		s.Require().NoError(err)
		s.Equal(uint64(2), badge.Metadata.Copies)

		count, err := s.store.CountTokens(ctx)
		s.Require().NoError(err)
		s.Equal(3, count)

		pending, err := s.store.PendingOutbox(ctx, 10)
		s.Require().NoError(err)
		s.Len(pending, 3)
	})

	s.Run("unknown badge is not found", func() {
		err := s.store.RecordAward(ctx, s.award("missing", "alice"))
		s.ErrorIs(err, sentinel.ErrNotFound)

		held, err := s.store.OwnerBadges(ctx, "alice")
		s.Require().NoError(err)
		s.Len(held, 2)
	})

	s.Run("unknown owner holds nothing", func() {
		held, err := s.store.OwnerBadges(ctx, "carol")
		s.Require().NoError(err)
		s.Empty(held)
	})
}

func (s *storeBehaviorSuite) TestContractMetadataInitOnce() {
	ctx := context.Background()

	_, err := s.store.ContractMetadata(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	first := models.DefaultContractMetadata()
	s.Require().NoError(s.store.InitContractMetadata(ctx, first))

	second := models.DefaultContractMetadata()
	second.Name = "Other"
	s.Require().NoError(s.store.InitContractMetadata(ctx, second))

	got, err := s.store.ContractMetadata(ctx)
	s.Require().NoError(err)
	s.Equal(first, *got)
}

func (s *storeBehaviorSuite) TestOutboxMarkPublished() {
	ctx := context.Background()
	s.mint("first_badge")
	a1 := s.award("first_badge", "alice")
	a2 := s.award("first_badge", "bob")
	s.Require().NoError(s.store.RecordAward(ctx, a1))
	s.Require().NoError(s.store.RecordAward(ctx, a2))

	pending, err := s.store.PendingOutbox(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(a1.Event.ID, pending[0].ID)

	s.Require().NoError(s.store.MarkPublished(ctx, []uuid.UUID{a1.Event.ID}, time.Now()))

	pending, err = s.store.PendingOutbox(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(a2.Event.ID, pending[0].ID)
	s.Equal("bob", pending[0].Key)
	s.JSONEq(`{"event":"nft_mint"}`, string(pending[0].Payload))
}
