package impl

import (
	"context"
	"log/slog"
	"strings"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager         repository.TransactionManager
	publisher         service.EventPublisher
	defaultMaxReviews int
	logger            *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:         params.TxManager,
		publisher:         params.Publisher,
		defaultMaxReviews: defaultMaxReviews(params.Config),
		logger:            params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the public view of an active user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = findActiveUser(ctx, repoFactory.NewUserRepository(), userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user.Public(), nil
}

// UpdateProfile applies the provided fields and recomputes profile completeness.
// A newly set Google Maps URL triggers an asynchronous review scrape.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.PublicUser, error) {
	if input.Empty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one field must be provided")
	}

	var (
		user       *entity.User
		mapsURLSet bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var err error
		user, err = findActiveUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if input.Username != nil && *input.Username != user.Username {
			taken, err := userRepo.UsernameExists(ctx, *input.Username, userID)
			if err != nil {
				return errors.Wrap(err, "failed to look up username")
			}
			if taken {
				return domainerrors.ErrDuplicateUsername.WrapMessage("profile update failed")
			}
			user.Username = *input.Username
		}

		if input.Phone != nil {
			user.Phone = input.Phone
		}
		if input.Company != nil {
			user.Company = input.Company
		}
		if input.GoogleMapsURL != nil {
			newURL := strings.TrimSpace(*input.GoogleMapsURL)
			mapsURLSet = newURL != "" && (user.GoogleMapsURL == nil || *user.GoogleMapsURL != newURL)
			user.GoogleMapsURL = &newURL
		}
		user.RecomputeProfileComplete()

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("profile update failed")
			}

			return mapUserWriteError(err, "failed to update profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID), slog.Bool("profileComplete", user.ProfileComplete))

	if mapsURLSet {
		publishBestEffort(ctx, srv.log(ctx), srv.publisher, constants.EventReviewScrapeRequested, userID, &service.ScrapeRequestedPayload{
			GoogleMapsURL: *user.GoogleMapsURL,
			MaxReviews:    srv.defaultMaxReviews,
		})
	}

	return user.Public(), nil
}

// findActiveUser maps a missing or tombstoned user to NotFound.
func findActiveUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotFound.WrapMessage("user lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
