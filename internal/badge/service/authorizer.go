package service

import (
	"context"

	"badgeregistry/internal/badge/models"
)

// ModeratorList authorizes a fixed set of accounts. The set is loaded from
// configuration at startup and never modified.
type ModeratorList struct {
	moderators map[models.AccountID]struct{}
}

func NewModeratorList(accounts []models.AccountID) *ModeratorList {
	m := &ModeratorList{moderators: make(map[models.AccountID]struct{}, len(accounts))}
	for _, a := range accounts {
		m.moderators[a] = struct{}{}
	}
	return m
}

func (m *ModeratorList) IsAuthorized(_ context.Context, caller models.AccountID) bool {
	_, ok := m.moderators[caller]
	return ok
}
