package postgres

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	q *query.Query
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{
		q: query.Use(db),
	}
}

// Create persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	tokenM := fromRefreshTokenDomain(token)
	if err := repo.q.RefreshTokenModel.WithContext(ctx).Create(tokenM); err != nil {
		return mapRefreshTokenWriteError(err)
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindValidByHash retrieves an unexpired refresh token by its hash.
func (repo *refreshTokenRepository) FindValidByHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	rt := repo.q.RefreshTokenModel
	tokenM, err := rt.WithContext(ctx).
		Where(rt.TokenHash.Eq(tokenHash), rt.ExpiresAt.Gt(now)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find refresh token")
	}

	return toRefreshTokenDomain(tokenM), nil
}

// ConsumeValidByHash deletes an unexpired token and returns the deleted row.
// The single DELETE ... RETURNING lets the database arbitrate concurrent consumers.
func (repo *refreshTokenRepository) ConsumeValidByHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	rt := repo.q.RefreshTokenModel

	// gen's Delete reports only the affected count, so the returned rows are
	// scanned through the underlying statement.
	var deleted []*model.RefreshTokenModel
	err := rt.WithContext(ctx).
		Where(rt.TokenHash.Eq(tokenHash), rt.ExpiresAt.Gt(now)).
		UnderlyingDB().
		Clauses(clause.Returning{}).
		Delete(&deleted).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "consume refresh token")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return toRefreshTokenDomain(deleted[0]), nil
}

// DeleteByHash deletes a refresh token by its hash, effectively ending a session.
func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) (bool, error) {
	rt := repo.q.RefreshTokenModel
	result, err := rt.WithContext(ctx).
		Where(rt.TokenHash.Eq(tokenHash)).
		Delete()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "delete refresh token")
	}

	return result.RowsAffected > 0, nil
}

// DeleteAllByUserID removes all refresh tokens for a specific user.
func (repo *refreshTokenRepository) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	rt := repo.q.RefreshTokenModel
	result, err := rt.WithContext(ctx).
		Where(rt.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete user refresh tokens")
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes all refresh tokens that expired at or before now.
func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	rt := repo.q.RefreshTokenModel
	result, err := rt.WithContext(ctx).
		Where(rt.ExpiresAt.Lte(now)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete expired refresh tokens")
	}

	return result.RowsAffected, nil
}

func mapRefreshTokenWriteError(err error) error {
	if constraint, ok := uniqueViolation(err); ok && (constraint == constraintRefreshTokenHash || constraint == "") {
		return errors.WithStack(repository.ErrDuplicateRefreshToken)
	}
	if isForeignKeyConstraintViolation(err) {
		return errors.Wrap(repository.ErrUserNotFound, "refresh token owner")
	}

	return domainerrors.NewDatabaseExecuteError(err, "create refresh token")
}

// --- Mapper Functions ---

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromRefreshTokenDomain(t *entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}
