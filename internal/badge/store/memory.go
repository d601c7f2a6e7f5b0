// Package store persists the badge catalog, the award ledger and the event
// outbox. Both implementations apply an award in a single call so the issued
// set and the owner index never diverge.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"badgeregistry/internal/badge/models"
	"badgeregistry/pkg/platform/sentinel"
)

// InMemory keeps the registry in insertion-ordered maps and slices guarded by
// one lock. Readers see either all of an award or none of it.
type InMemory struct {
	mu sync.RWMutex

	badges     map[models.BadgeID]*models.Badge
	badgeOrder []models.BadgeID

	issued      map[models.TokenID]struct{}
	issuedOrder []models.TokenID
	owners      map[models.AccountID][]models.BadgeID

	contract *models.ContractMetadata
	outbox   []models.OutboxEntry
}

func NewInMemory() *InMemory {
	return &InMemory{
		badges: make(map[models.BadgeID]*models.Badge),
		issued: make(map[models.TokenID]struct{}),
		owners: make(map[models.AccountID][]models.BadgeID),
	}
}

func (s *InMemory) CreateBadge(_ context.Context, badge *models.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.badges[badge.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.badges[badge.ID] = badge.Clone()
	s.badgeOrder = append(s.badgeOrder, badge.ID)
	return nil
}

func (s *InMemory) FindBadge(_ context.Context, id models.BadgeID) (*models.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.badges[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return b.Clone(), nil
}

// FindBadges returns the subset of ids present in the catalog.
func (s *InMemory) FindBadges(_ context.Context, ids []models.BadgeID) (map[models.BadgeID]*models.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[models.BadgeID]*models.Badge, len(ids))
	for _, id := range ids {
		if b, ok := s.badges[id]; ok {
			out[id] = b.Clone()
		}
	}
	return out, nil
}

func (s *InMemory) CountBadges(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.badgeOrder), nil
}

func (s *InMemory) ListBadges(_ context.Context, w models.Window) ([]*models.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := models.Slice(s.badgeOrder, w)
	out := make([]*models.Badge, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.badges[id].Clone())
	}
	return out, nil
}

func (s *InMemory) IsIssued(_ context.Context, tokenID models.TokenID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.issued[tokenID]
	return ok, nil
}

// RecordAward applies every effect of an award or none of them.
func (s *InMemory) RecordAward(_ context.Context, award models.Award) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge, ok := s.badges[award.BadgeID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.issued[award.TokenID]; ok {
		return sentinel.ErrAlreadyUsed
	}

	badge.Metadata.Copies++
	s.issued[award.TokenID] = struct{}{}
	s.issuedOrder = append(s.issuedOrder, award.TokenID)
	s.owners[award.OwnerID] = append(s.owners[award.OwnerID], award.BadgeID)
	if award.Event.ID != uuid.Nil {
		s.outbox = append(s.outbox, award.Event)
	}
	return nil
}

func (s *InMemory) CountTokens(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issuedOrder), nil
}

func (s *InMemory) ListIssued(_ context.Context, w models.Window) ([]models.TokenID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Slice(s.issuedOrder, w), nil
}

// OwnerBadges returns the owner's badges in award order, or nil for an owner
// with no awards.
func (s *InMemory) OwnerBadges(_ context.Context, owner models.AccountID) ([]models.BadgeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	held := s.owners[owner]
	if len(held) == 0 {
		return nil, nil
	}
	out := make([]models.BadgeID, len(held))
	copy(out, held)
	return out, nil
}

func (s *InMemory) ContractMetadata(_ context.Context) (*models.ContractMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contract == nil {
		return nil, sentinel.ErrNotFound
	}
	m := *s.contract
	return &m, nil
}

// InitContractMetadata fills the metadata slot once. Later calls are no-ops.
func (s *InMemory) InitContractMetadata(_ context.Context, metadata models.ContractMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contract == nil {
		s.contract = &metadata
	}
	return nil
}

// PendingOutbox returns unpublished entries in commit order.
func (s *InMemory) PendingOutbox(_ context.Context, limit int) ([]models.OutboxEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.outbox)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.OutboxEntry, n)
	copy(out, s.outbox[:n])
	return out, nil
}

// MarkPublished drops delivered entries, so the outbox only ever holds what
// is still pending.
func (s *InMemory) MarkPublished(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	published := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		published[id] = struct{}{}
	}
	kept := s.outbox[:0]
	for _, e := range s.outbox {
		if _, ok := published[e.ID]; !ok {
			kept = append(kept, e)
		}
	}
	clear(s.outbox[len(kept):])
	s.outbox = kept
	return nil
}
