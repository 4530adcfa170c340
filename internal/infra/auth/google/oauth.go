package google

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"crm/config"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
)

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService handles the Google authorization-code flow.
type OAuthService struct {
	oauthConfig *oauth2.Config
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthCodeExchanger {
	oc := &oauth2.Config{
		Endpoint: endpoints.Google,
		Scopes:   defaultScopes,
	}
	if cfg.GoogleOAuth != nil {
		oc.ClientID = cfg.GoogleOAuth.ClientID
		oc.ClientSecret = cfg.GoogleOAuth.ClientSecret
		oc.RedirectURL = cfg.GoogleOAuth.RedirectURL
	}

	return &OAuthService{oauthConfig: oc}
}

// Configured reports whether both client id and secret are set.
func (s *OAuthService) Configured() bool {
	return s.oauthConfig.ClientID != "" && s.oauthConfig.ClientSecret != ""
}

// AuthCodeURL returns the consent page URL for the given state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for the ID token in Google's response.
func (s *OAuthService) Exchange(ctx context.Context, code string) (string, error) {
	if !s.Configured() {
		return "", domainerrors.ErrOAuthNotConfigured
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", domainerrors.ErrInvalidExternalToken.WrapMessage(err.Error())
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", domainerrors.ErrInvalidExternalToken.WrapMessage("token response has no id_token")
	}

	return idToken, nil
}
