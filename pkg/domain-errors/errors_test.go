package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches outer code", func(t *testing.T) {
		err := New(CodeDuplicateBadge, "badge exists")
		assert.True(t, HasCode(err, CodeDuplicateBadge))
		assert.False(t, HasCode(err, CodeUnknownBadge))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("mint: %w", New(CodeUnauthorized, "caller is not a moderator"))
		assert.True(t, HasCode(err, CodeUnauthorized))
	})

	t.Run("matches inner coded error", func(t *testing.T) {
		inner := New(CodeTimeout, "deadline")
		err := Wrap(inner, CodeInternal, "award failed")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodeTimeout))
	})

	t.Run("plain error has no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "failed to load badge")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load badge: connection reset", err.Error())
	assert.Equal(t, "failed to load badge", MessageOf(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOutOfRange, CodeOf(New(CodeOutOfRange, "x")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("untyped")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeUnauthenticated:      http.StatusUnauthorized,
		CodeUnauthorized:         http.StatusForbidden,
		CodeTransfersDisabled:    http.StatusForbidden,
		CodeDuplicateBadge:       http.StatusConflict,
		CodeAlreadyAwarded:       http.StatusConflict,
		CodeUnknownBadge:         http.StatusNotFound,
		CodeMalformedTokenID:     http.StatusBadRequest,
		CodeInvalidOwnerIdentity: http.StatusBadRequest,
		CodeOutOfRange:           http.StatusBadRequest,
		CodeInvalidLimit:         http.StatusBadRequest,
		CodeTimeout:              http.StatusGatewayTimeout,
		CodeInternal:             http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, ToHTTPStatus(code), string(code))
	}
}
