package usecase

import (
	"context"
	"strconv"
	"time"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase scrapes and lists Google Maps reviews for a user.
type ReviewUsecase interface {
	ScrapeReviews(ctx context.Context, userID uuid.UUID, input *ScrapeReviewsInput) (*ScrapeResult, error)
	ListReviews(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
	DashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
}

// ScrapeReviewsInput defines a scrape request. Zero MaxReviews selects the default.
type ScrapeReviewsInput struct {
	URL        string
	MaxReviews int
}

// ReviewView is the client-facing view of a stored review.
type ReviewView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Author    string     `json:"author"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text"`
	Date      *time.Time `json:"date"`
	SourceURL string     `json:"source_url"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewReviewView converts a review entity to its client-facing view.
func NewReviewView(r *entity.Review) *ReviewView {
	return &ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		Author:    r.Author,
		Rating:    r.Rating,
		Text:      r.Text,
		Date:      r.PublishedAt,
		SourceURL: r.SourceURL,
		CreatedAt: r.CreatedAt,
	}
}

// ScrapeResult summarizes a completed scrape.
type ScrapeResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	ReviewsCount int           `json:"reviews_count"`
	Reviews      []*ReviewView `json:"reviews"`
}

// DashboardStats summarizes the user's stored reviews.
type DashboardStats struct {
	TotalReviews       int64            `json:"total_reviews"`
	AverageRating      float64          `json:"average_rating"`
	RatingDistribution map[string]int64 `json:"rating_distribution"`
}

// NewDashboardStats converts review stats to their response shape.
func NewDashboardStats(stats *entity.ReviewStats) *DashboardStats {
	distribution := make(map[string]int64, len(stats.ByRating))
	for rating, n := range stats.ByRating {
		distribution[strconv.Itoa(rating)] = n
	}

	return &DashboardStats{
		TotalReviews:       stats.Total,
		AverageRating:      stats.AverageRating,
		RatingDistribution: distribution,
	}
}
