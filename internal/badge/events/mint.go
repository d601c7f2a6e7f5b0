// Package events renders ledger events and relays them from the outbox to a
// publisher.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"badgeregistry/internal/badge/models"
)

const (
	Standard = "nep171"
	Version  = "1.0.0"

	// EventMint is the event type of an award.
	EventMint = "nft_mint"

	// LogPrefix marks an event line in logs so indexers can pick it out.
	LogPrefix = "EVENT_JSON:"
)

// MintData is one entry of a mint event.
type MintData struct {
	OwnerID  string   `json:"owner_id"`
	TokenIDs []string `json:"token_ids"`
	Memo     *string  `json:"memo,omitempty"`
}

// Envelope is the standard event record.
type Envelope struct {
	Standard string     `json:"standard"`
	Version  string     `json:"version"`
	Event    string     `json:"event"`
	Data     []MintData `json:"data"`
}

// NewMint builds the event for one award. An empty memo is dropped.
func NewMint(owner models.AccountID, tokenID models.TokenID, memo *string) Envelope {
	if memo != nil && *memo == "" {
		memo = nil
	}
	return Envelope{
		Standard: Standard,
		Version:  Version,
		Event:    EventMint,
		Data: []MintData{{
			OwnerID:  owner.String(),
			TokenIDs: []string{string(tokenID)},
			Memo:     memo,
		}},
	}
}

// LogLine renders the envelope as a single prefixed log line.
func (e Envelope) LogLine() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}
	return LogPrefix + string(raw), nil
}

// OutboxEntry serializes the envelope for the outbox. The record key is the
// owner so one account's events stay ordered on a partition.
func (e Envelope) OutboxEntry(now time.Time) (models.OutboxEntry, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return models.OutboxEntry{}, fmt.Errorf("marshal event: %w", err)
	}
	var key string
	if len(e.Data) > 0 {
		key = e.Data[0].OwnerID
	}
	return models.OutboxEntry{
		ID:        uuid.New(),
		EventType: e.Event,
		Key:       key,
		Payload:   raw,
		CreatedAt: now,
	}, nil
}
