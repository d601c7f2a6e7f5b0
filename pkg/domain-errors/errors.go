// Package domainerrors carries coded errors across layers. Stores return
// sentinel facts, services translate them into a Code, and transports map the
// Code to a status without inspecting messages.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies a distinct failure condition callers can branch on.
type Code string

const (
	// Registry error kinds.
	CodeUnauthorized         Code = "unauthorized"
	CodeDuplicateBadge       Code = "duplicate_badge"
	CodeUnknownBadge         Code = "unknown_badge"
	CodeAlreadyAwarded       Code = "already_awarded"
	CodeMalformedTokenID     Code = "malformed_token_id"
	CodeInvalidOwnerIdentity Code = "invalid_owner_identity"
	CodeOutOfRange           Code = "out_of_range"
	CodeInvalidLimit         Code = "invalid_limit"
	CodeTransfersDisabled    Code = "transfers_disabled"

	// Transport and infrastructure.
	CodeUnauthenticated    Code = "unauthenticated"
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvariantViolation Code = "invariant_violation"
	CodeNotFound           Code = "not_found"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// Error is a coded domain error. Err is kept for errors.Is/As chains but is
// never rendered to clients.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the client-safe message of the outermost coded error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a code to an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeUnauthorized, CodeTransfersDisabled:
		return http.StatusForbidden
	case CodeDuplicateBadge, CodeAlreadyAwarded:
		return http.StatusConflict
	case CodeUnknownBadge, CodeNotFound:
		return http.StatusNotFound
	case CodeMalformedTokenID, CodeInvalidOwnerIdentity, CodeOutOfRange, CodeInvalidLimit,
		CodeBadRequest, CodeValidation, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
