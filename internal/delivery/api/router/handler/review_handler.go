package handler

import (
	"log/slog"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for the review endpoints.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ScrapeReviewsRequest asks for a scrape of a Google Maps listing. A zero
// max_reviews uses the configured default.
type ScrapeReviewsRequest struct {
	URL        string `json:"url" validate:"required,max=500"`
	MaxReviews int    `json:"max_reviews" validate:"omitempty,gte=1,lte=200"`
}

// ScrapeReviews runs a scrape for the authenticated user.
func (h *ReviewHandler) ScrapeReviews(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ScrapeReviewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.reviewUC.ScrapeReviews(c.Request().Context(), userID, &usecase.ScrapeReviewsInput{
		URL:        req.URL,
		MaxReviews: req.MaxReviews,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// ListReviews returns the authenticated user's stored reviews.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews)
}

// DashboardStats summarizes the authenticated user's stored reviews.
func (h *ReviewHandler) DashboardStats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.reviewUC.DashboardStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}
