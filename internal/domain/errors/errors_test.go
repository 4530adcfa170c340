package errors

import (
	"net/http"
	"testing"

	"crm/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	withDetails := ErrValidationFailed.WithDetails("username: too short")

	assert.True(t, errors.Is(withDetails, ErrValidationFailed))
	assert.False(t, errors.Is(withDetails, ErrNotFound))
	assert.Equal(t, "username: too short", withDetails.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageKeepsKind(t *testing.T) {
	err := ErrAccountNotFound.WrapMessage("login")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "ACCOUNT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrAccountNotFound))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "find user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_ERROR", err.ErrorCode())
	assert.Equal(t, "find user", err.Details())
	assert.True(t, errors.Is(err, cause))
}

func TestGetAppError(t *testing.T) {
	appErr, ok := GetAppError(errors.Wrap(ErrDuplicateEmail, "signup"))
	assert.True(t, ok)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", appErr.ErrorCode())

	_, ok = GetAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsAppError(errors.New("plain")))
	assert.True(t, IsAppError(ErrRateLimited))
}
