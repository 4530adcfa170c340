package postgres

import (
	"testing"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantOK         bool
		wantConstraint string
	}{
		{
			name:           "driver error with constraint",
			err:            errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserUsername}, "insert"),
			wantOK:         true,
			wantConstraint: constraintUserUsername,
		},
		{
			name:   "other driver error",
			err:    &pgconn.PgError{Code: pgForeignKeyViolation},
			wantOK: false,
		},
		{
			name:   "translated error",
			err:    gorm.ErrDuplicatedKey,
			wantOK: true,
		},
		{
			name:   "unrelated error",
			err:    errors.New("connection refused"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint, ok := uniqueViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

func TestForeignKeyAndCheckViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))

	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}

func TestMapUserWriteError(t *testing.T) {
	assert.ErrorIs(t, mapUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserEmail}, "create"), repository.ErrDuplicateEmail)
	assert.ErrorIs(t, mapUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserUsername}, "create"), repository.ErrDuplicateUsername)
	assert.ErrorIs(t, mapUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserGoogleID}, "create"), repository.ErrDuplicateEmail)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, mapUserWriteError(errors.New("connection reset"), "create"), &appErr)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}

func TestMapRefreshTokenWriteError(t *testing.T) {
	err := mapRefreshTokenWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintRefreshTokenHash})
	assert.ErrorIs(t, err, repository.ErrDuplicateRefreshToken)
}
