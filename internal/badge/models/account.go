package models

import (
	"regexp"

	dErrors "badgeregistry/pkg/domain-errors"
)

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

// accountIDPattern accepts lowercase alphanumeric parts joined by single
// '-', '_' or '.' separators. ':' never matches, which keeps the token id
// split unambiguous.
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// AccountID identifies a badge owner or a caller.
type AccountID string

// ParseAccountID validates s against the account naming rules.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) < minAccountIDLen || len(s) > maxAccountIDLen {
		return "", dErrors.New(dErrors.CodeInvalidOwnerIdentity, "account id must be between 2 and 64 characters")
	}
	if !accountIDPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeInvalidOwnerIdentity, "account id contains invalid characters")
	}
	return AccountID(s), nil
}

func (a AccountID) String() string {
	return string(a)
}
