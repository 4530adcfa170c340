package repository

import (
	"context"
	"time"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when no unexpired token matches the hash.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrDuplicateRefreshToken is returned when a token hash already exists.
	ErrDuplicateRefreshToken = errors.New("refresh token already exists")
)

// RefreshTokenRepository is the ledger of issued refresh tokens.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindValidByHash returns the token only if it exists and expires after now.
	FindValidByHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error)

	// ConsumeValidByHash atomically deletes and returns an unexpired token.
	// Among concurrent callers presenting the same hash at most one succeeds.
	ConsumeValidByHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error)

	// DeleteByHash removes a token and reports whether it existed.
	DeleteByHash(ctx context.Context, tokenHash string) (bool, error)

	// DeleteAllByUserID removes every token for a user and returns how many were removed.
	DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired purges tokens that expired at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
