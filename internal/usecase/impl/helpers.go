package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mapUserWriteError turns repository uniqueness sentinels into domain kinds.
func mapUserWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrDuplicateEmail.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrDuplicateUsername.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}

// publishBestEffort emits an event and only logs failures.
func publishBestEffort(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, eventType string, userID uuid.UUID, payload any) {
	if publisher == nil {
		return
	}

	event, err := service.NewEvent(eventType, userID.String(), deliverycontext.GetRequestIDFromContext(ctx), payload)
	if err != nil {
		logger.Warn("Failed to build event", slog.String("type", eventType), slog.Any("error", err))

		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", eventType),
			slog.String("eventID", event.ID),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Event published", slog.String("type", eventType), slog.String("eventID", event.ID))
}
