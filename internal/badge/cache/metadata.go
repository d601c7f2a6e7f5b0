// Package cache holds read-through Redis caches for registry data that never
// changes once written.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"badgeregistry/internal/badge/models"
)

const contractMetadataKey = "badges:contract_metadata"

// MetadataCache caches the contract metadata singleton. The slot is written
// once at startup, so entries only expire to bound staleness after a manual
// database edit. A nil client disables caching.
type MetadataCache struct {
	client *redis.Client
	ttl    time.Duration
}

type Option func(*MetadataCache)

// WithTTL overrides the default one-hour expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *MetadataCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func NewMetadataCache(client *redis.Client, opts ...Option) *MetadataCache {
	c := &MetadataCache{client: client, ttl: time.Hour}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached metadata, or ok=false on a miss or when disabled.
func (c *MetadataCache) Get(ctx context.Context) (*models.ContractMetadata, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, contractMetadataKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached contract metadata: %w", err)
	}
	var m models.ContractMetadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("decode cached contract metadata: %w", err)
	}
	return &m, true, nil
}

func (c *MetadataCache) Set(ctx context.Context, m models.ContractMetadata) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode contract metadata: %w", err)
	}
	if err := c.client.Set(ctx, contractMetadataKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache contract metadata: %w", err)
	}
	return nil
}
