package models

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEntry is a serialized event waiting to be relayed. It is written in
// the same transaction as the award that produced it.
type OutboxEntry struct {
	ID          uuid.UUID
	EventType   string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
