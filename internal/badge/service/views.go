package service

import (
	"context"
	"errors"

	"badgeregistry/internal/badge/models"
	dErrors "badgeregistry/pkg/domain-errors"
	"badgeregistry/pkg/platform/sentinel"
)

// Views are rebuilt from the catalog on every call, so a token always shows
// the badge's current copies count. Views that combine several reads run in
// one read transaction.

// GetBadge returns the catalog entry, or nil when no badge has that id.
func (s *Service) GetBadge(ctx context.Context, id string) (*models.Badge, error) {
	badge, err := s.store.FindBadge(ctx, models.BadgeID(id))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
	}
	return badge, nil
}

// ListBadges enumerates the catalog in mint order.
func (s *Service) ListBadges(ctx context.Context, page models.PageRequest) (badges []*models.Badge, err error) {
	err = s.tx.RunInReadTx(ctx, func(ctx context.Context, store Store) error {
		total, err := store.CountBadges(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count badges")
		}
		w, err := page.Window(total)
		if err != nil {
			return err
		}
		badges, err = store.ListBadges(ctx, w)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list badges")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// GetToken returns the token view, or nil when the id does not decode, the
// badge is unknown, or the pair was never awarded.
func (s *Service) GetToken(ctx context.Context, tokenID string) (token *models.Token, err error) {
	badgeID, owner, err := models.DecodeTokenID(models.TokenID(tokenID))
	if err != nil {
		return nil, nil
	}
	err = s.tx.RunInReadTx(ctx, func(ctx context.Context, store Store) error {
		badge, err := store.FindBadge(ctx, badgeID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
		}
		issued, err := store.IsIssued(ctx, models.TokenID(tokenID))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check issued token")
		}
		if issued {
			t := models.NewToken(badge, owner)
			token = &t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

// TotalSupply is the number of tokens ever issued.
func (s *Service) TotalSupply(ctx context.Context) (uint64, error) {
	n, err := s.store.CountTokens(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count tokens")
	}
	return uint64(n), nil
}

// ListTokens enumerates every issued token in issue order.
func (s *Service) ListTokens(ctx context.Context, page models.PageRequest) (tokens []models.Token, err error) {
	err = s.tx.RunInReadTx(ctx, func(ctx context.Context, store Store) error {
		total, err := store.CountTokens(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count tokens")
		}
		w, err := page.Window(total)
		if err != nil {
			return err
		}
		ids, err := store.ListIssued(ctx, w)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list tokens")
		}

		pairs := make([]tokenPair, 0, len(ids))
		for _, id := range ids {
			badgeID, owner, err := models.DecodeTokenID(id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "issued token id does not decode")
			}
			pairs = append(pairs, tokenPair{badge: badgeID, owner: owner})
		}
		tokens, err = buildTokens(ctx, store, pairs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// SupplyForOwner is the number of badges owner holds, 0 for an unknown owner.
func (s *Service) SupplyForOwner(ctx context.Context, owner string) (uint64, error) {
	account, err := models.ParseAccountID(owner)
	if err != nil {
		return 0, err
	}
	held, err := s.store.OwnerBadges(ctx, account)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner badges")
	}
	return uint64(len(held)), nil
}

// ListTokensForOwner enumerates owner's tokens in award order. The limit is
// checked first and an unknown owner yields an empty page for any offset.
func (s *Service) ListTokensForOwner(ctx context.Context, owner string, page models.PageRequest) (tokens []models.Token, err error) {
	if err := page.CheckLimit(); err != nil {
		return nil, err
	}
	account, err := models.ParseAccountID(owner)
	if err != nil {
		return nil, err
	}
	err = s.tx.RunInReadTx(ctx, func(ctx context.Context, store Store) error {
		held, err := store.OwnerBadges(ctx, account)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner badges")
		}
		if len(held) == 0 {
			tokens = []models.Token{}
			return nil
		}
		w, err := page.Window(len(held))
		if err != nil {
			return err
		}

		selected := models.Slice(held, w)
		pairs := make([]tokenPair, 0, len(selected))
		for _, badgeID := range selected {
			pairs = append(pairs, tokenPair{badge: badgeID, owner: account})
		}
		tokens, err = buildTokens(ctx, store, pairs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type tokenPair struct {
	badge models.BadgeID
	owner models.AccountID
}

// buildTokens joins pairs with the catalog in one lookup. A pair whose badge
// is missing means the ledger and catalog disagree.
func buildTokens(ctx context.Context, store Store, pairs []tokenPair) ([]models.Token, error) {
	ids := make([]models.BadgeID, 0, len(pairs))
	seen := make(map[models.BadgeID]struct{}, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.badge]; ok {
			continue
		}
		seen[p.badge] = struct{}{}
		ids = append(ids, p.badge)
	}
	badges, err := store.FindBadges(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badges")
	}

	tokens := make([]models.Token, 0, len(pairs))
	for _, p := range pairs {
		badge, ok := badges[p.badge]
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "awarded badge missing from catalog")
		}
		tokens = append(tokens, models.NewToken(badge, p.owner))
	}
	return tokens, nil
}

// ContractMetadata returns the registry metadata, falling back to the
// defaults when the slot was never initialized.
func (s *Service) ContractMetadata(ctx context.Context) (*models.ContractMetadata, error) {
	if s.cache != nil {
		m, ok, err := s.cache.Get(ctx)
		if err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "contract metadata cache read failed", "error", err)
		}
		if ok {
			return m, nil
		}
	}

	m, err := s.store.ContractMetadata(ctx)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contract metadata")
		}
		def := models.DefaultContractMetadata()
		return &def, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *m); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "contract metadata cache write failed", "error", err)
		}
	}
	return m, nil
}

// InitContractMetadata validates and stores the registry metadata. The slot
// is written once; later calls keep the first value.
func (s *Service) InitContractMetadata(ctx context.Context, m models.ContractMetadata) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.store.InitContractMetadata(ctx, m); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to initialize contract metadata")
	}
	return nil
}
