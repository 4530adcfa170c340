package postgres

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const reviewInsertBatchSize = 100

type reviewRepository struct {
	q *query.Query
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		q: query.Use(db),
	}
}

// CreateBatch inserts the reviews in batches of reviewInsertBatchSize.
func (repo *reviewRepository) CreateBatch(ctx context.Context, reviews []*entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	models := make([]*model.ReviewModel, 0, len(reviews))
	for _, review := range reviews {
		if review.ID == uuid.Nil {
			review.ID = uuid.New()
		}
		models = append(models, fromReviewDomain(review))
	}

	if err := repo.q.ReviewModel.WithContext(ctx).CreateInBatches(models, reviewInsertBatchSize); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "create reviews")
	}

	for i, m := range models {
		reviews[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// ListByUserID returns a user's reviews, newest first.
func (repo *reviewRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	r := repo.q.ReviewModel
	models, err := r.WithContext(ctx).
		Where(r.UserID.Eq(userID)).
		Order(r.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for _, m := range models {
		reviews = append(reviews, toReviewDomain(m))
	}

	return reviews, nil
}

// CountByRating groups the user's reviews by star rating.
func (repo *reviewRepository) CountByRating(ctx context.Context, userID uuid.UUID) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Total  int64
	}

	r := repo.q.ReviewModel
	err := r.WithContext(ctx).
		Select(r.Rating, r.ID.Count().As("total")).
		Where(r.UserID.Eq(userID)).
		Group(r.Rating).
		Scan(&rows)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count reviews by rating")
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Rating] = row.Total
	}

	return counts, nil
}

// DeleteByUserID removes every review owned by the user.
func (repo *reviewRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r := repo.q.ReviewModel
	result, err := r.WithContext(ctx).
		Where(r.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete reviews")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:          m.ID,
		UserID:      m.UserID,
		Author:      m.Author,
		Rating:      m.Rating,
		Text:        m.Text,
		PublishedAt: m.PublishedAt,
		SourceURL:   m.SourceURL,
		CreatedAt:   m.CreatedAt,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Author:      r.Author,
		Rating:      r.Rating,
		Text:        r.Text,
		PublishedAt: r.PublishedAt,
		SourceURL:   r.SourceURL,
		CreatedAt:   r.CreatedAt,
	}
}
