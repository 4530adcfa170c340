package google

import (
	"context"
	"log/slog"
	"testing"

	"crm/config"
	domainerrors "crm/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestAuthService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "jane@x.com",
				"name":           "Jane",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, "Jane", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_StringVerifiedFlag(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "sub",
			Claims:  map[string]any{"email": "jane@x.com", "email_verified": "false"},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.False(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejected(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: audience provided does not match aud claim in the JWT")
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidExternalToken))
}

func TestAuthService_VerifyIDToken_MissingEmail(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{}}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidExternalToken))
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}
