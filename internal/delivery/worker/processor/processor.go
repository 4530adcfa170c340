// Package processor dispatches domain events received by the review worker.
package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackMaxReviews = 50

// retryableError wraps an error to indicate the transport should redeliver the event
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether a Process failure should be redelivered.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// Processor routes events to the usecases that handle them.
type Processor struct {
	reviewUC          usecase.ReviewUsecase
	defaultMaxReviews int
	logger            *slog.Logger
}

// ProcessorParams holds dependencies for the Processor, injected by Fx.
type ProcessorParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProcessor is the constructor for Processor.
func NewProcessor(params ProcessorParams) *Processor {
	maxReviews := fallbackMaxReviews
	if params.Config.Scraper != nil && params.Config.Scraper.DefaultMaxReviews > 0 {
		maxReviews = params.Config.Scraper.DefaultMaxReviews
	}

	return &Processor{
		reviewUC:          params.ReviewUC,
		defaultMaxReviews: maxReviews,
		logger:            params.Logger,
	}
}

// Scope returns ctx carrying the request id and a logger tagged with it.
// The id is taken from the first non-empty candidate, else a new one is made.
func (p *Processor) Scope(ctx context.Context, candidates ...string) (context.Context, *slog.Logger) {
	requestID := ""
	for _, candidate := range candidates {
		if candidate != "" {
			requestID = candidate

			break
		}
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := p.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// Process handles one event. Failures wrapped as retryable should be redelivered;
// any other failure is permanent and the event should be dropped.
func (p *Processor) Process(ctx context.Context, event *service.Event) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID),
	)

	switch event.Type {
	case constants.EventReviewScrapeRequested:
		return p.scrapeRequested(ctx, logger, event)

	case constants.EventAccountDeleted:
		logger.InfoContext(ctx, "[Worker] Account deleted")

		return nil

	default:
		logger.WarnContext(ctx, "[Worker] Ignoring unknown event type")

		return nil
	}
}

func (p *Processor) scrapeRequested(ctx context.Context, logger *slog.Logger, event *service.Event) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id")
	}

	var payload service.ScrapeRequestedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return errors.Wrap(err, "invalid scrape payload")
	}

	maxReviews := payload.MaxReviews
	if maxReviews == 0 {
		maxReviews = p.defaultMaxReviews
	}

	result, err := p.reviewUC.ScrapeReviews(ctx, userID, &usecase.ScrapeReviewsInput{
		URL:        payload.GoogleMapsURL,
		MaxReviews: maxReviews,
	})
	if err != nil {
		if isTransient(err) {
			return newRetryableError(err)
		}

		return err
	}

	logger.InfoContext(ctx, "[Worker] Scrape request processed", slog.Int("reviews", result.ReviewsCount))

	return nil
}

// isTransient treats provider and storage failures as worth retrying. Client
// errors and missing configuration will not improve on redelivery.
func isTransient(err error) bool {
	appErr, ok := domainerrors.GetAppError(err)
	if !ok {
		return true
	}
	if errors.Is(err, domainerrors.ErrScraperUnavailable) {
		return false
	}

	return appErr.HTTPCode() >= http.StatusInternalServerError
}
