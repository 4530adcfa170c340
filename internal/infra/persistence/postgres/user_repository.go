// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gen"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It initializes the repository with a database connection and the GORM Gen query builder.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single active user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "find user by id", repo.q.UserModel.ID.Eq(id))
}

// FindByEmail retrieves a single active user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by email", repo.q.UserModel.Email.Eq(entity.NormalizeEmail(email)))
}

func (repo *userRepository) findOne(ctx context.Context, op string, cond gen.Condition) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		Where(cond, u.Active.Is(true)).
		Take()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// UsernameExists reports whether an active user other than excludeID holds the username.
func (repo *userRepository) UsernameExists(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	u := repo.q.UserModel
	do := u.WithContext(ctx).Where(u.Username.Eq(username), u.Active.Is(true))
	if excludeID != uuid.Nil {
		do = do.Where(u.ID.Neq(excludeID))
	}

	count, err := do.Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "check username")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = entity.NormalizeEmail(user.Email)

	userM := fromUserDomain(user)
	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		return mapUserWriteError(err, "create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile columns and the Google link of an active user.
// password_hash is only written by UpdatePasswordHash.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.Email = entity.NormalizeEmail(user.Email)
	user.UpdatedAt = time.Now()

	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID), u.Active.Is(true)).
		Updates(map[string]any{
			"email":            user.Email,
			"username":         user.Username,
			"google_id":        user.GoogleID,
			"phone":            user.Phone,
			"company":          user.Company,
			"google_maps_url":  user.GoogleMapsURL,
			"profile_complete": user.ProfileComplete,
			"updated_at":       user.UpdatedAt,
		})
	if err != nil {
		return mapUserWriteError(err, "update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordHash replaces only the password hash of an active user.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(id), u.Active.Is(true)).
		UpdateSimple(
			u.PasswordHash.Value(passwordHash),
			u.UpdatedAt.Value(time.Now()),
		)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SoftDelete tombstones the user so its email and username can be reused.
func (repo *userRepository) SoftDelete(ctx context.Context, user *entity.User) error {
	user.Tombstone(time.Now())

	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID), u.Active.Is(true)).
		Updates(map[string]any{
			"active":     false,
			"email":      user.Email,
			"username":   user.Username,
			"google_id":  nil,
			"updated_at": user.UpdatedAt,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "soft delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// mapUserWriteError converts PostgreSQL errors to repository sentinels.
func mapUserWriteError(err error, op string) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintUserUsername:
			return errors.Wrap(repository.ErrDuplicateUsername, op)
		default:
			// Email, linked Google account, or an untranslatable duplicate.
			return errors.Wrap(repository.ErrDuplicateEmail, op)
		}
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("user must have a password or a linked Google account")
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// --- Mapper Functions ---

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Username:        m.Username,
		PasswordHash:    m.PasswordHash,
		GoogleID:        m.GoogleID,
		Phone:           m.Phone,
		Company:         m.Company,
		GoogleMapsURL:   m.GoogleMapsURL,
		ProfileComplete: m.ProfileComplete,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		PasswordHash:    u.PasswordHash,
		GoogleID:        u.GoogleID,
		Phone:           u.Phone,
		Company:         u.Company,
		GoogleMapsURL:   u.GoogleMapsURL,
		ProfileComplete: u.ProfileComplete,
		Active:          u.Active,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
