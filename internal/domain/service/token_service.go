package service

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID        `json:"-"`
	Email  string           `json:"email,omitempty"`
	Nonce  string           `json:"nonce,omitempty"`
	Type   entity.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the tokens that make up a session.
// Only IssueRefreshToken performs I/O, through the ledger it is handed.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the user.
	IssueAccessToken(user *entity.User) (string, error)

	// IssueRefreshToken generates an opaque refresh token, records its hash in the
	// ledger and returns the raw value.
	IssueRefreshToken(ctx context.Context, ledger repository.RefreshTokenRepository, userID uuid.UUID) (string, error)

	// VerifyAccessToken checks signature, expiry and type of an access token.
	VerifyAccessToken(token string) (*Claims, error)

	// IssueStateToken signs a short-lived OAuth state token carrying nonce.
	IssueStateToken(nonce string) (string, error)

	// VerifyStateToken checks an OAuth state token and returns its claims.
	VerifyStateToken(token string) (*Claims, error)

	// HashToken returns the ledger key for a raw refresh token.
	HashToken(raw string) string
}
