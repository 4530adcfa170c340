package usecase

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.PublicUser, error)
}

// UpdateProfileInput lists the editable profile fields. Nil means unchanged.
type UpdateProfileInput struct {
	Username      *string
	Phone         *string
	Company       *string
	GoogleMapsURL *string
}

// Empty reports whether no field was provided.
func (in *UpdateProfileInput) Empty() bool {
	return in == nil || (in.Username == nil && in.Phone == nil && in.Company == nil && in.GoogleMapsURL == nil)
}
