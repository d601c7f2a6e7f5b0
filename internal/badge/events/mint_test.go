package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintLogLine(t *testing.T) {
	t.Run("without memo", func(t *testing.T) {
		line, err := NewMint("alice", "first_badge:alice", nil).LogLine()
		require.NoError(t, err)
		assert.Equal(t,
			`EVENT_JSON:{"standard":"nep171","version":"1.0.0","event":"nft_mint","data":[{"owner_id":"alice","token_ids":["first_badge:alice"]}]}`,
			line)
	})

	t.Run("with memo", func(t *testing.T) {
		memo := "for the first PR"
		line, err := NewMint("alice", "first_badge:alice", &memo).LogLine()
		require.NoError(t, err)
		assert.Equal(t,
			`EVENT_JSON:{"standard":"nep171","version":"1.0.0","event":"nft_mint","data":[{"owner_id":"alice","token_ids":["first_badge:alice"],"memo":"for the first PR"}]}`,
			line)
	})

	t.Run("empty memo is dropped", func(t *testing.T) {
		memo := ""
		env := NewMint("alice", "first_badge:alice", &memo)
		assert.Nil(t, env.Data[0].Memo)
	})
}

func TestMintOutboxEntry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry, err := NewMint("bob.near", "first_badge:bob.near", nil).OutboxEntry(now)
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(entry.ID))
	assert.Equal(t, EventMint, entry.EventType)
	assert.Equal(t, "bob.near", entry.Key)
	assert.Equal(t, now, entry.CreatedAt)
	assert.Nil(t, entry.PublishedAt)

	var env Envelope
	require.NoError(t, json.Unmarshal(entry.Payload, &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, []string{"first_badge:bob.near"}, env.Data[0].TokenIDs)
}
