package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"vacation-api/internal/core/apperror"
)

func TestKindOf(t *testing.T) {
	sentinel := apperror.New(apperror.KindForbidden, "nope")

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(sentinel))
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(fmt.Errorf("ctx: %w", sentinel)))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("token is expired")
	err := apperror.Wrap(cause, apperror.KindUnauthenticated, "Invalid or expired token")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Invalid or expired token: token is expired", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.KindInvalid, "x"))
}

func TestMessageHidesInternalDetail(t *testing.T) {
	assert.Equal(t, "Internal Server Error", apperror.Message(errors.New("dial tcp: refused")))
	assert.Equal(t, "Internal Server Error", apperror.Message(apperror.New(apperror.KindInternal, "secret")))
	assert.Equal(t, "bad", apperror.Message(apperror.New(apperror.KindInvalid, "bad")))
}

func TestStatus(t *testing.T) {
	cases := map[apperror.Kind]int{
		apperror.KindUnauthenticated: http.StatusUnauthorized,
		apperror.KindForbidden:       http.StatusForbidden,
		apperror.KindInvalid:         http.StatusBadRequest,
		apperror.KindInvalidState:    http.StatusBadRequest,
		apperror.KindNotFound:        http.StatusBadRequest,
		apperror.KindInternal:        http.StatusInternalServerError,
	}
	for k, want := range cases {
		assert.Equal(t, want, apperror.Status(k), k.String())
	}
}
