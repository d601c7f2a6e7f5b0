package models

import (
	"strings"

	dErrors "badgeregistry/pkg/domain-errors"
)

// TokenIDSeparator joins a badge id and an owner account id. Neither account
// ids nor minted badge ids may contain it.
const TokenIDSeparator = ":"

// TokenID names one awarded badge: "<badge_id>:<owner_account_id>".
type TokenID string

func (t TokenID) String() string {
	return string(t)
}

// EncodeTokenID builds the token id for a (badge, owner) pair.
func EncodeTokenID(badgeID BadgeID, owner AccountID) TokenID {
	return TokenID(string(badgeID) + TokenIDSeparator + string(owner))
}

// DecodeTokenID splits a token id at the FIRST separator. The suffix must be
// a valid account id.
func DecodeTokenID(tokenID TokenID) (BadgeID, AccountID, error) {
	badgePart, ownerPart, ok := strings.Cut(string(tokenID), TokenIDSeparator)
	if !ok {
		return "", "", dErrors.New(dErrors.CodeMalformedTokenID, "token id has no separator")
	}
	owner, err := ParseAccountID(ownerPart)
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInvalidOwnerIdentity, "token id has an invalid owner")
	}
	return BadgeID(badgePart), owner, nil
}
