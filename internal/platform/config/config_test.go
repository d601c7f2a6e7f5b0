package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeregistry/internal/badge/models"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BADGES_MODERATORS", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONTRACT_ICON", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Registry.Moderators)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, models.DefaultContractMetadata(), cfg.Registry.Metadata)
	assert.Equal(t, 100, cfg.Outbox.BatchSize)
	assert.Equal(t, time.Second, cfg.Outbox.PollInterval)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BADGES_MODERATORS", " mod.near, dev-gov.near ,mod.near,")
	t.Setenv("KAFKA_BROKERS", "localhost:9092, localhost:9093")
	t.Setenv("OUTBOX_POLL_INTERVAL", "250ms")
	t.Setenv("OUTBOX_BATCH_SIZE", "not-a-number")
	t.Setenv("CONTRACT_NAME", "Test Badges")
	t.Setenv("CONTRACT_ICON", "data:image/svg+xml,")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []models.AccountID{"mod.near", "dev-gov.near"}, cfg.Registry.Moderators)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, cfg.Outbox.PollInterval)
	assert.Equal(t, 100, cfg.Outbox.BatchSize)
	assert.Equal(t, "Test Badges", cfg.Registry.Metadata.Name)
	require.NotNil(t, cfg.Registry.Metadata.Icon)
	assert.Equal(t, "data:image/svg+xml,", *cfg.Registry.Metadata.Icon)
}

func TestFromEnv_RejectsInvalidModerator(t *testing.T) {
	t.Setenv("BADGES_MODERATORS", "Mod.Near")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BADGES_MODERATORS")
}
