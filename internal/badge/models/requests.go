package models

import (
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "badgeregistry/pkg/domain-errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MintBadgeRequest is the body of a badge definition call.
type MintBadgeRequest struct {
	BadgeID       string        `json:"badge_id" validate:"required,max=256"`
	BadgeMetadata BadgeMetadata `json:"badge_metadata"`
}

// Normalize trims identifiers before validation.
func (r *MintBadgeRequest) Normalize() {
	r.BadgeID = strings.TrimSpace(r.BadgeID)
}

// Validate checks field-level constraints.
func (r *MintBadgeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid mint badge request")
	}
	return nil
}

// RewardRequest is the body of an award call. The badge id comes from the path.
type RewardRequest struct {
	ReceiverAccountID string  `json:"receiver_account_id" validate:"required"`
	Memo              *string `json:"memo" validate:"omitempty,max=1024"`
}

// Normalize trims identifiers before validation.
func (r *RewardRequest) Normalize() {
	r.ReceiverAccountID = strings.TrimSpace(r.ReceiverAccountID)
}

// Validate checks field-level constraints.
func (r *RewardRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid reward request")
	}
	return nil
}

// TransferRequest accepts any transfer-shaped body. Transfers always fail, so
// the fields are only decoded for logging.
type TransferRequest struct {
	ReceiverID string  `json:"receiver_id"`
	TokenID    string  `json:"token_id"`
	ApprovalID *uint64 `json:"approval_id"`
	Memo       *string `json:"memo"`
	Msg        *string `json:"msg"`
}
