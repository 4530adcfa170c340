// Package google implements Google Sign-In: ID token verification and the
// server-side authorization-code exchange.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"crm/config"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
)

// validateFunc matches idtoken.Validate so tests can substitute a fake.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService against Google's public keys.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	var clientID string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, domainerrors.ErrOAuthNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidExternalToken.WrapMessage(err.Error())
	}

	email, _ := payload.Claims["email"].(string)
	if payload.Subject == "" || email == "" {
		return nil, domainerrors.ErrInvalidExternalToken.WrapMessage("token carries no subject or email")
	}
	name, _ := payload.Claims["name"].(string)

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		EmailVerified: emailVerified(payload.Claims["email_verified"]),
	}, nil
}

// emailVerified accepts both the boolean and the string encoding Google has used.
func emailVerified(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}
