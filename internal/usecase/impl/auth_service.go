// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
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

// Auth flows as labelled on the auth attempts metric.
const (
	flowSignup     = "signup"
	flowLogin      = "login"
	flowRefresh    = "refresh"
	flowGoogle     = "google"
	flowGoogleCode = "google_code"
)

const (
	maxUsernameLength       = 50
	maxUsernameSuffixTrials = 1000
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	googleAuth    service.OAuthAuthService
	codeExchanger service.OAuthCodeExchanger
	publisher     service.EventPublisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	GoogleAuth    service.OAuthAuthService
	CodeExchanger service.OAuthCodeExchanger
	Publisher     service.EventPublisher
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		googleAuth:    params.GoogleAuth,
		codeExchanger: params.CodeExchanger,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a password account and starts its first session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (result *usecase.AuthResult, err error) {
	defer func() { srv.metrics.ObserveAuth(flowSignup, err) }()

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	// bcrypt is CPU-bound; keep it out of the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByEmail(ctx, email); findErr == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("signup failed")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up email")
		}

		taken, existsErr := userRepo.UsernameExists(ctx, input.Username, uuid.Nil)
		if existsErr != nil {
			return errors.Wrap(existsErr, "failed to look up username")
		}
		if taken {
			return domainerrors.ErrDuplicateUsername.WrapMessage("signup failed")
		}

		newUser := &entity.User{
			Email:        email,
			Username:     input.Username,
			PasswordHash: &passwordHash,
			Active:       true,
		}
		newUser.RecomputeProfileComplete()

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return mapUserWriteError(createErr, "failed to create user during signup")
		}

		var issueErr error
		result, issueErr = srv.issueSession(ctx, repoFactory, newUser)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("User signed up", slog.Any("userID", result.User.ID))

	return result, nil
}

// Login verifies a password and starts a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (result *usecase.AuthResult, err error) {
	defer func() { srv.metrics.ObserveAuth(flowLogin, err) }()

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.loadUser(ctx, func(userRepo repository.UserRepository) (*entity.User, error) {
		return userRepo.FindByEmail(ctx, email)
	}, domainerrors.ErrAccountNotFound)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !user.HasPassword() || !srv.hasher.Check(input.Password, *user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var issueErr error
		result, issueErr = srv.issueSession(ctx, repoFactory, user)

		return issueErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return result, nil
}

// Logout revokes a single refresh token. Unknown tokens are not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) (*usecase.LogoutResult, error) {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	var revoked bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var deleteErr error
		revoked, deleteErr = repoFactory.NewRefreshTokenRepository().DeleteByHash(ctx, tokenHash)

		return errors.Wrap(deleteErr, "failed to delete refresh token")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute logout transaction")
	}

	srv.log(ctx).Info("Logout processed", slog.Bool("revoked", revoked))

	return &usecase.LogoutResult{Revoked: revoked}, nil
}

// Refresh consumes a refresh token and issues a rotated pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (result *usecase.AuthResult, err error) {
	defer func() { srv.metrics.ObserveAuth(flowRefresh, err) }()

	tokenHash := srv.tokenService.HashToken(refreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consumed, consumeErr := repoFactory.NewRefreshTokenRepository().ConsumeValidByHash(ctx, tokenHash, srv.now())
		if errors.Is(consumeErr, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("refresh token not found or expired")
		}
		if consumeErr != nil {
			return errors.Wrap(consumeErr, "failed to consume refresh token")
		}

		user, findErr := repoFactory.NewUserRepository().FindByID(ctx, consumed.UserID)
		if errors.Is(findErr, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("refresh token owner is no longer active")
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find refresh token owner")
		}

		var issueErr error
		result, issueErr = srv.issueSession(ctx, repoFactory, user)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return result, nil
}

// GoogleSignIn signs in with a Google ID token, creating the account on first use.
func (srv *authService) GoogleSignIn(ctx context.Context, idToken string) (result *usecase.AuthResult, err error) {
	defer func() { srv.metrics.ObserveAuth(flowGoogle, err) }()

	return srv.googleSignIn(ctx, idToken)
}

// GoogleAuthURL returns the consent page URL with a signed state.
func (srv *authService) GoogleAuthURL(ctx context.Context) (*usecase.GoogleAuthURLResult, error) {
	if !srv.codeExchanger.Configured() {
		return nil, domainerrors.ErrOAuthNotConfigured
	}

	state, err := srv.tokenService.IssueStateToken(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue oauth state")
	}

	return &usecase.GoogleAuthURLResult{
		URL:   srv.codeExchanger.AuthCodeURL(state),
		State: state,
	}, nil
}

// GoogleCodeSignIn completes the authorization-code flow.
func (srv *authService) GoogleCodeSignIn(ctx context.Context, input *usecase.GoogleCodeInput) (result *usecase.AuthResult, err error) {
	defer func() { srv.metrics.ObserveAuth(flowGoogleCode, err) }()

	if _, err = srv.tokenService.VerifyStateToken(input.State); err != nil {
		return nil, errors.Wrap(err, "invalid oauth state")
	}

	idToken, err := srv.codeExchanger.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange google authorization code")
	}

	return srv.googleSignIn(ctx, idToken)
}

func (srv *authService) googleSignIn(ctx context.Context, idToken string) (*usecase.AuthResult, error) {
	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify google id token")
	}

	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrUnverifiedEmail.WrapMessage("google sign-in failed")
	}

	var result *usecase.AuthResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, findErr := srv.findOrCreateGoogleUser(ctx, repoFactory.NewUserRepository(), oauthUser)
		if findErr != nil {
			return findErr
		}

		var issueErr error
		result, issueErr = srv.issueSession(ctx, repoFactory, user)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	return result, nil
}

// findOrCreateGoogleUser links an existing account by email or creates a password-less one.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, userRepo repository.UserRepository, oauthUser *service.OAuthUser) (*entity.User, error) {
	email := entity.NormalizeEmail(oauthUser.Email)

	user, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		if user.GoogleID == nil {
			googleID := oauthUser.ID
			user.GoogleID = &googleID
			if err := userRepo.Update(ctx, user); err != nil {
				return nil, mapUserWriteError(err, "failed to link google account")
			}
			srv.log(ctx).Info("Linked Google account", slog.Any("userID", user.ID))
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up google user")
	}

	username, err := uniqueUsername(ctx, userRepo, entity.UsernameFromEmail(email))
	if err != nil {
		return nil, err
	}

	googleID := oauthUser.ID
	newUser := &entity.User{
		Email:    email,
		Username: username,
		GoogleID: &googleID,
		Active:   true,
	}
	newUser.RecomputeProfileComplete()

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, mapUserWriteError(err, "failed to create google user")
	}
	srv.log(ctx).Info("Created user from Google sign-in", slog.Any("userID", newUser.ID), slog.String("username", username))

	return newUser, nil
}

// uniqueUsername returns base, or base followed by the smallest free numeric suffix.
func uniqueUsername(ctx context.Context, userRepo repository.UserRepository, base string) (string, error) {
	if base == "" {
		base = "user"
	}
	base = truncateRunes(base, maxUsernameLength-4)

	candidate := base
	for i := 1; i <= maxUsernameSuffixTrials; i++ {
		taken, err := userRepo.UsernameExists(ctx, candidate, uuid.Nil)
		if err != nil {
			return "", errors.Wrap(err, "failed to check username availability")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}

	return "", errors.Errorf("no free username derived from %q", base)
}

// truncateRunes cuts s to at most maxBytes bytes without splitting a rune.
func truncateRunes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// ChangePassword replaces the password after verifying the current one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.loadUser(ctx, func(userRepo repository.UserRepository) (*entity.User, error) {
		return userRepo.FindByID(ctx, userID)
	}, domainerrors.ErrNotFound)
	if err != nil {
		return errors.Wrap(err, "change password failed")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.CurrentPassword, *user.PasswordHash) {
		srv.log(ctx).Warn("Change password rejected", slog.Any("userID", userID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updateErr := repoFactory.NewUserRepository().UpdatePasswordHash(ctx, userID, newHash)
		if errors.Is(updateErr, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user disappeared during password change")
		}

		return errors.Wrap(updateErr, "failed to store new password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute change password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount revokes every session, drops the user's reviews and tombstones the user.
func (srv *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	var revoked, reviewsDeleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("account deletion failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if revoked, err = repoFactory.NewRefreshTokenRepository().DeleteAllByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh tokens")
		}

		if reviewsDeleted, err = repoFactory.NewReviewRepository().DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}

		if err := userRepo.SoftDelete(ctx, user); err != nil {
			return errors.Wrap(err, "failed to soft delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete account transaction")
	}

	srv.log(ctx).Info("Account deleted",
		slog.Any("userID", userID),
		slog.Int64("revokedTokens", revoked),
		slog.Int64("deletedReviews", reviewsDeleted),
	)

	publishBestEffort(ctx, srv.log(ctx), srv.publisher, constants.EventAccountDeleted, userID, nil)

	return nil
}

// LogoutAll revokes every refresh token of the user.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) (*usecase.LogoutAllResult, error) {
	var revoked int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var deleteErr error
		revoked, deleteErr = repoFactory.NewRefreshTokenRepository().DeleteAllByUserID(ctx, userID)

		return errors.Wrap(deleteErr, "failed to revoke refresh tokens")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute logout-all transaction")
	}

	srv.log(ctx).Info("Revoked all sessions", slog.Any("userID", userID), slog.Int64("revoked", revoked))

	return &usecase.LogoutAllResult{Revoked: revoked}, nil
}

// Authenticate verifies an access token without touching storage.
func (srv *authService) Authenticate(_ context.Context, bearer string) (uuid.UUID, error) {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.VerifyAccessToken(bearer)
	if err != nil {
		// Protected routes report every token failure as Unauthorized.
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("access token rejected: " + err.Error())
	}

	return claims.UserID, nil
}

// issueSession mints an access token and records a refresh token in the current transaction.
func (srv *authService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.AuthResult, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(ctx, repoFactory.NewRefreshTokenRepository(), user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constants.TokenTypeBearer,
		User:         user.Public(),
	}, nil
}

// loadUser reads a user in a short transaction so the primary is consulted,
// mapping a missing user to notFound.
func (srv *authService) loadUser(
	ctx context.Context,
	find func(userRepo repository.UserRepository) (*entity.User, error),
	notFound *domainerrors.BaseError,
) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = find(repoFactory.NewUserRepository())
		if errors.Is(findErr, repository.ErrUserNotFound) {
			return notFound.WrapMessage("user lookup failed")
		}

		return errors.Wrap(findErr, "failed to find user")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
