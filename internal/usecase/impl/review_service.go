package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/infra/metrics"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackMaxReviews = 50
	minMaxReviews      = 1
	maxMaxReviews      = 200
	maxSourceURLLength = 500
	anonymousAuthor    = "Anonymous"
)

var mapsURLMarkers = []string{
	"maps.google.com",
	"www.google.com/maps",
	"google.com/maps",
}

var publishAtLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
}

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager         repository.TransactionManager
	scraper           service.ReviewScraper
	metrics           *metrics.Metrics
	defaultMaxReviews int
	logger            *slog.Logger
	now               func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Scraper   service.ReviewScraper
	Metrics   *metrics.Metrics `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:         params.TxManager,
		scraper:           params.Scraper,
		metrics:           params.Metrics,
		defaultMaxReviews: defaultMaxReviews(params.Config),
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ScrapeReviews runs a provider job for the listing and stores the mapped reviews.
func (srv *reviewService) ScrapeReviews(ctx context.Context, userID uuid.UUID, input *usecase.ScrapeReviewsInput) (*usecase.ScrapeResult, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" || len(url) > maxSourceURLLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("url: required, at most 500 characters")
	}

	maxReviews := input.MaxReviews
	if maxReviews == 0 {
		maxReviews = srv.defaultMaxReviews
	}
	if maxReviews < minMaxReviews || maxReviews > maxMaxReviews {
		return nil, domainerrors.ErrValidationFailed.WithDetails("max_reviews: must be between 1 and 200")
	}

	if !IsGoogleMapsURL(url) {
		return nil, domainerrors.ErrInvalidMapsURL
	}

	if !srv.scraper.Configured() {
		return nil, domainerrors.ErrScraperUnavailable
	}

	var owner *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		owner, err = findActiveUser(ctx, repoFactory.NewUserRepository(), userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review owner")
	}

	srv.log(ctx).Info("Starting review scrape", slog.Any("userID", userID), slog.String("url", url), slog.Int("maxReviews", maxReviews))

	items, err := srv.scraper.Scrape(ctx, url, maxReviews)
	if err != nil {
		srv.log(ctx).Error("Review scrape failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrScrapeFailed.WrapMessage(err.Error())
	}

	reviews := srv.mapScrapedReviews(ctx, owner, url, items)

	if len(reviews) > 0 {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewReviewRepository().CreateBatch(ctx, reviews)
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to store scraped reviews")
		}
	}

	srv.metrics.AddReviewsScraped(len(reviews))
	srv.log(ctx).Info("Review scrape completed", slog.Any("userID", userID), slog.Int("reviews", len(reviews)))

	views := make([]*usecase.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, usecase.NewReviewView(review))
	}

	return &usecase.ScrapeResult{
		Success:      true,
		Message:      fmt.Sprintf("Successfully scraped %d reviews", len(reviews)),
		ReviewsCount: len(reviews),
		Reviews:      views,
	}, nil
}

// ListReviews returns the user's stored reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, userID uuid.UUID) ([]*usecase.ReviewView, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		reviews, err = repoFactory.NewReviewRepository().ListByUserID(ctx, userID)

		return errors.Wrap(err, "failed to list reviews")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list reviews transaction")
	}

	views := make([]*usecase.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, usecase.NewReviewView(review))
	}

	return views, nil
}

// DashboardStats counts the user's stored reviews per rating.
func (srv *reviewService) DashboardStats(ctx context.Context, userID uuid.UUID) (*usecase.DashboardStats, error) {
	var counts map[int]int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findActiveUser(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		var err error
		counts, err = repoFactory.NewReviewRepository().CountByRating(ctx, userID)

		return errors.Wrap(err, "failed to count reviews")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute dashboard stats transaction")
	}

	return usecase.NewDashboardStats(entity.NewReviewStats(counts)), nil
}

func (srv *reviewService) mapScrapedReviews(ctx context.Context, owner *entity.User, sourceURL string, items []service.ScrapedReview) []*entity.Review {
	now := srv.now().UTC()
	reviews := make([]*entity.Review, 0, len(items))

	for _, item := range items {
		rating := int(item.Stars)
		if rating < 1 || rating > 5 {
			srv.log(ctx).Warn("Skipping review with out-of-range rating", slog.Float64("stars", item.Stars))

			continue
		}

		reviews = append(reviews, &entity.Review{
			ID:          uuid.New(),
			UserID:      owner.ID,
			Author:      reviewAuthor(item, owner.Username),
			Rating:      rating,
			Text:        item.Text,
			PublishedAt: parsePublishAt(item.PublishAt),
			SourceURL:   sourceURL,
			CreatedAt:   now,
		})
	}

	return reviews
}

// IsGoogleMapsURL reports whether url points at a Google Maps listing.
func IsGoogleMapsURL(url string) bool {
	lower := strings.ToLower(url)
	for _, marker := range mapsURLMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func reviewAuthor(item service.ScrapedReview, ownerUsername string) string {
	for _, candidate := range []string{item.AuthorName, item.Name, ownerUsername} {
		if candidate != "" {
			return candidate
		}
	}

	return anonymousAuthor
}

// parsePublishAt returns nil when the provider date matches no known layout.
func parsePublishAt(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range publishAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}

func defaultMaxReviews(cfg *config.Config) int {
	if cfg != nil && cfg.Scraper != nil && cfg.Scraper.DefaultMaxReviews > 0 {
		return cfg.Scraper.DefaultMaxReviews
	}

	return fallbackMaxReviews
}
