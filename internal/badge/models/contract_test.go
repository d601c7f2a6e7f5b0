package models

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "badgeregistry/pkg/domain-errors"
)

func strPtr(s string) *string { return &s }

func TestContractMetadataValidate(t *testing.T) {
	goodHash := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("h", 32)))
	shortHash := base64.StdEncoding.EncodeToString([]byte("short"))

	tests := []struct {
		name    string
		mutate  func(m *ContractMetadata)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(*ContractMetadata) {}},
		{name: "reference with hash", mutate: func(m *ContractMetadata) {
			m.Reference = strPtr("https://example.com/ref.json")
			m.ReferenceHash = strPtr(goodHash)
		}},
		{name: "wrong spec", mutate: func(m *ContractMetadata) { m.Spec = "nft-2.0.0" }, wantErr: true},
		{name: "missing name", mutate: func(m *ContractMetadata) { m.Name = "" }, wantErr: true},
		{name: "missing symbol", mutate: func(m *ContractMetadata) { m.Symbol = "" }, wantErr: true},
		{name: "reference without hash", mutate: func(m *ContractMetadata) {
			m.Reference = strPtr("https://example.com/ref.json")
		}, wantErr: true},
		{name: "hash without reference", mutate: func(m *ContractMetadata) {
			m.ReferenceHash = strPtr(goodHash)
		}, wantErr: true},
		{name: "hash not base64", mutate: func(m *ContractMetadata) {
			m.Reference = strPtr("ref")
			m.ReferenceHash = strPtr("%%%")
		}, wantErr: true},
		{name: "hash wrong length", mutate: func(m *ContractMetadata) {
			m.Reference = strPtr("ref")
			m.ReferenceHash = strPtr(shortHash)
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultContractMetadata()
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewBadgeForcesZeroCopies(t *testing.T) {
	b := NewBadge("first_badge", BadgeMetadata{Title: strPtr("First Badge"), Copies: 7})
	assert.Equal(t, uint64(0), b.Metadata.Copies)
	assert.Equal(t, "First Badge", *b.Metadata.Title)
}

func TestBadgeCloneIsDeep(t *testing.T) {
	b := NewBadge("first_badge", BadgeMetadata{Title: strPtr("First Badge")})
	c := b.Clone()
	*c.Metadata.Title = "changed"
	c.Metadata.Copies = 3
	assert.Equal(t, "First Badge", *b.Metadata.Title)
	assert.Equal(t, uint64(0), b.Metadata.Copies)
}

func TestNewToken(t *testing.T) {
	b := NewBadge("first_badge", BadgeMetadata{Title: strPtr("First Badge")})
	b.Metadata.Copies = 1
	tok := NewToken(b, "alice")
	assert.Equal(t, TokenID("first_badge:alice"), tok.TokenID)
	assert.Equal(t, AccountID("alice"), tok.OwnerID)
	assert.Equal(t, uint64(1), tok.Metadata.Copies)
	assert.Nil(t, tok.ApprovedAccountIDs)
}

func TestRequestsValidate(t *testing.T) {
	mint := MintBadgeRequest{BadgeID: "  first_badge "}
	mint.Normalize()
	assert.Equal(t, "first_badge", mint.BadgeID)
	assert.NoError(t, mint.Validate())

	empty := MintBadgeRequest{BadgeID: "   "}
	empty.Normalize()
	assert.True(t, dErrors.HasCode(empty.Validate(), dErrors.CodeValidation))

	reward := RewardRequest{}
	assert.True(t, dErrors.HasCode(reward.Validate(), dErrors.CodeValidation))

	reward = RewardRequest{ReceiverAccountID: " alice ", Memo: strPtr("welcome")}
	reward.Normalize()
	assert.Equal(t, "alice", reward.ReceiverAccountID)
	assert.NoError(t, reward.Validate())
}
