package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"vacation-api/internal/core/apperror"
)

func TestNewNeverNullData(t *testing.T) {
	r := New(CodeOK, "OK", nil)
	assert.Equal(t, struct{}{}, r.Data)
	assert.Equal(t, "Forbidden", Error(CodeForbidden, "").Msg)
	assert.Equal(t, "nope", Error(CodeForbidden, "nope").Msg)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unauthenticated", apperror.New(apperror.KindUnauthenticated, "Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"forbidden", apperror.New(apperror.KindForbidden, "Forbidden"), http.StatusForbidden, "Forbidden"},
		{"not found is 400", apperror.New(apperror.KindNotFound, "gone"), http.StatusBadRequest, "gone"},
		{"invalid state", apperror.New(apperror.KindInvalidState, "decided"), http.StatusBadRequest, "decided"},
		{"internal hides detail", errors.New("dial tcp 10.0.0.1:3306: refused"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := FromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.msg, body.Msg)
		})
	}
}
