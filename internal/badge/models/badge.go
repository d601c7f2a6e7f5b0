package models

import (
	"strings"

	dErrors "badgeregistry/pkg/domain-errors"
)

const maxBadgeIDLen = 256

// BadgeID is chosen by the minter and never changes.
type BadgeID string

// ParseBadgeID validates a minter-supplied badge id.
func ParseBadgeID(s string) (BadgeID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "badge_id is required")
	}
	if len(s) > maxBadgeIDLen {
		return "", dErrors.New(dErrors.CodeValidation, "badge_id must be 256 bytes or less")
	}
	if strings.Contains(s, TokenIDSeparator) {
		return "", dErrors.New(dErrors.CodeValidation, "badge_id must not contain ':'")
	}
	return BadgeID(s), nil
}

func (b BadgeID) String() string {
	return string(b)
}

// BadgeMetadata is the display metadata of a badge plus its award counter.
// Optional fields serialize as null.
type BadgeMetadata struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Media         *string `json:"media"`
	MediaHash     *string `json:"media_hash"`
	Copies        uint64  `json:"copies"`
	IssuedAt      *string `json:"issued_at"`
	ExpiresAt     *string `json:"expires_at"`
	StartsAt      *string `json:"starts_at"`
	UpdatedAt     *string `json:"updated_at"`
	Extra         *string `json:"extra"`
	Reference     *string `json:"reference"`
	ReferenceHash *string `json:"reference_hash"`
}

// Badge is a catalog entry.
//
// Invariants:
//   - ID is immutable after minting
//   - Metadata.Copies starts at 0 and only ever increases, by one per award
type Badge struct {
	ID       BadgeID       `json:"badge_id"`
	Metadata BadgeMetadata `json:"badge_metadata"`
}

// NewBadge mints a catalog entry. Any caller-supplied copies value is
// discarded.
func NewBadge(id BadgeID, metadata BadgeMetadata) *Badge {
	metadata.Copies = 0
	return &Badge{ID: id, Metadata: metadata}
}

// Clone returns a deep copy so stores never hand out aliases to their state.
func (b *Badge) Clone() *Badge {
	if b == nil {
		return nil
	}
	c := *b
	c.Metadata = b.Metadata.clone()
	return &c
}

func (m BadgeMetadata) clone() BadgeMetadata {
	return BadgeMetadata{
		Title:         cloneString(m.Title),
		Description:   cloneString(m.Description),
		Media:         cloneString(m.Media),
		MediaHash:     cloneString(m.MediaHash),
		Copies:        m.Copies,
		IssuedAt:      cloneString(m.IssuedAt),
		ExpiresAt:     cloneString(m.ExpiresAt),
		StartsAt:      cloneString(m.StartsAt),
		UpdatedAt:     cloneString(m.UpdatedAt),
		Extra:         cloneString(m.Extra),
		Reference:     cloneString(m.Reference),
		ReferenceHash: cloneString(m.ReferenceHash),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
