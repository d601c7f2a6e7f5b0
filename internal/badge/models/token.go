package models

// Token is the enumeration view of one awarded badge. It is rebuilt from the
// catalog on every read, so Metadata always carries the current copies count.
type Token struct {
	TokenID            TokenID           `json:"token_id"`
	OwnerID            AccountID         `json:"owner_id"`
	Metadata           *BadgeMetadata    `json:"metadata"`
	ApprovedAccountIDs map[string]uint64 `json:"approved_account_ids"`
}

// NewToken projects a catalog entry onto an owner. Approvals are unsupported
// and always null.
func NewToken(badge *Badge, owner AccountID) Token {
	metadata := badge.Metadata.clone()
	return Token{
		TokenID:  EncodeTokenID(badge.ID, owner),
		OwnerID:  owner,
		Metadata: &metadata,
	}
}

// Award is the unit the ledger commits in one step: the catalog counter
// increment, the issued-set insert, the owner-index append and the outbox
// record all travel together.
type Award struct {
	BadgeID BadgeID
	OwnerID AccountID
	TokenID TokenID
	Event   OutboxEntry
}

// NewAward derives the token id for a reward.
func NewAward(badgeID BadgeID, owner AccountID) Award {
	return Award{
		BadgeID: badgeID,
		OwnerID: owner,
		TokenID: EncodeTokenID(badgeID, owner),
	}
}
