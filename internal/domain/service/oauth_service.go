package service

import (
	"context"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	// This is primarily used for Google Sign-In where the client sends an ID token directly
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}

// OAuthCodeExchanger drives the server-side authorization-code flow.
type OAuthCodeExchanger interface {
	// Configured reports whether client credentials are present.
	Configured() bool

	// AuthCodeURL returns the consent page URL carrying the given state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the provider's ID token.
	Exchange(ctx context.Context, code string) (idToken string, err error)
}
