// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no active user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert or update collides on email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when an insert or update collides on username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
// Lookups only ever return active users; tombstoned rows are invisible.
type UserRepository interface {
	// FindByID retrieves a single active user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single active user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UsernameExists reports whether any active user other than excludeID holds the username.
	// Pass uuid.Nil to check against every active user.
	UsernameExists(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the profile columns and the Google link of an active user.
	// The password hash is never written here; use UpdatePasswordHash.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces only the password hash of an active user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SoftDelete tombstones the user in place.
	SoftDelete(ctx context.Context, user *entity.User) error
}
