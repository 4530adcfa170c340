package repository

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists scraped reviews.
type ReviewRepository interface {
	// CreateBatch inserts all reviews in a single statement.
	CreateBatch(ctx context.Context, reviews []*entity.Review) error

	// ListByUserID returns a user's reviews, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// CountByRating returns the number of the user's reviews per star rating.
	CountByRating(ctx context.Context, userID uuid.UUID) (map[int]int64, error)

	// DeleteByUserID removes every review owned by the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
