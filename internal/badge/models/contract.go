package models

import (
	"encoding/base64"

	dErrors "badgeregistry/pkg/domain-errors"
)

// MetadataSpec is the only contract metadata spec version accepted.
const MetadataSpec = "nft-1.0.0"

const referenceHashLen = 32

// ContractMetadata describes the registry as a whole.
type ContractMetadata struct {
	Spec          string  `json:"spec"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Icon          *string `json:"icon"`
	BaseURI       *string `json:"base_uri"`
	Reference     *string `json:"reference"`
	ReferenceHash *string `json:"reference_hash"`
}

// DefaultContractMetadata is used when nothing is configured.
func DefaultContractMetadata() ContractMetadata {
	return ContractMetadata{
		Spec:   MetadataSpec,
		Name:   "NEAR Developer Governance Badges",
		Symbol: "NEAR DevGov",
	}
}

// Validate checks well-formedness. It runs once, when the metadata slot is
// initialized.
func (m ContractMetadata) Validate() error {
	if m.Spec != MetadataSpec {
		return dErrors.New(dErrors.CodeValidation, "spec must be "+MetadataSpec)
	}
	if m.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if m.Symbol == "" {
		return dErrors.New(dErrors.CodeValidation, "symbol is required")
	}
	if (m.Reference == nil) != (m.ReferenceHash == nil) {
		return dErrors.New(dErrors.CodeValidation, "reference and reference_hash must be set together")
	}
	if m.ReferenceHash != nil {
		raw, err := base64.StdEncoding.DecodeString(*m.ReferenceHash)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "reference_hash must be base64")
		}
		if len(raw) != referenceHashLen {
			return dErrors.New(dErrors.CodeValidation, "reference_hash must be 32 bytes")
		}
	}
	return nil
}
