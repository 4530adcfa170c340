package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Constraint and index names from migrations/000001_init.up.sql.
const (
	constraintUserEmail        = "users_email_active_key"
	constraintUserUsername     = "users_username_active_key"
	constraintUserGoogleID     = "users_google_id_key"
	constraintRefreshTokenHash = "refresh_tokens_token_hash_key"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// uniqueViolation reports whether err is a unique violation and, when the driver
// error is still available, which constraint fired.
func uniqueViolation(err error) (constraint string, ok bool) {
	if pgErr, found := pgError(err); found {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return pgErr.ConstraintName, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Translated errors drop the driver detail; fall back to the message text.
		msg := err.Error()
		for _, name := range []string{constraintUserEmail, constraintUserUsername, constraintUserGoogleID, constraintRefreshTokenHash} {
			if strings.Contains(msg, name) {
				return name, true
			}
		}

		return "", true
	}

	return "", false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgCheckViolation
}
