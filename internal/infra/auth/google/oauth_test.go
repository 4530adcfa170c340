package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"crm/config"
	domainerrors "crm/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService(tokenURL string) *OAuthService {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/auth/callback",
	}}
	svc := NewOAuthService(cfg).(*OAuthService)
	svc.oauthConfig.Endpoint.TokenURL = tokenURL

	return svc
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := newTestOAuthService("http://unused")

	raw := svc.AuthCodeURL("state-123")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:3000/auth/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestOAuthService_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     "google-id-token",
		})
	}))
	defer server.Close()

	idToken, err := newTestOAuthService(server.URL).Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "google-id-token", idToken)
}

func TestOAuthService_ExchangeWithoutIDToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "access", "token_type": "Bearer"})
	}))
	defer server.Close()

	_, err := newTestOAuthService(server.URL).Exchange(context.Background(), "auth-code")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidExternalToken))
}

func TestOAuthService_ExchangeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	_, err := newTestOAuthService(server.URL).Exchange(context.Background(), "bad-code")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidExternalToken))
}

func TestOAuthService_NotConfigured(t *testing.T) {
	svc := NewOAuthService(&config.Config{})
	assert.False(t, svc.Configured())

	_, err := svc.Exchange(context.Background(), "code")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}
