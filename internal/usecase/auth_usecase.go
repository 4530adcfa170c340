// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a password account.
type SignupInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleCodeInput carries the result of the Google consent redirect.
type GoogleCodeInput struct {
	Code  string
	State string
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthResult is returned by every flow that starts a session.
type AuthResult struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	TokenType    string             `json:"token_type"`
	User         *entity.PublicUser `json:"user"`
}

// LogoutResult reports whether the presented refresh token was still live.
type LogoutResult struct {
	Revoked bool `json:"revoked"`
}

// LogoutAllResult reports how many sessions were revoked.
type LogoutAllResult struct {
	Revoked int64 `json:"revoked"`
}

// GoogleAuthURLResult carries the consent URL and the state bound to it.
type GoogleAuthURLResult struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthUsecase defines the authentication and session lifecycle.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) (*LogoutResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	GoogleSignIn(ctx context.Context, idToken string) (*AuthResult, error)
	GoogleAuthURL(ctx context.Context) (*GoogleAuthURLResult, error)
	GoogleCodeSignIn(ctx context.Context, input *GoogleCodeInput) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	LogoutAll(ctx context.Context, userID uuid.UUID) (*LogoutAllResult, error)

	// Authenticate verifies a bearer access token and returns its subject.
	Authenticate(ctx context.Context, bearer string) (uuid.UUID, error)
}
