package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

const (
	refreshTokenBytes    = 32
	refreshTokenAttempts = 3
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte        // HS256 signing key shared by access and state tokens.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	stateTTL   time.Duration // Time-to-live for OAuth state tokens.

	now      func() time.Time
	randRead func([]byte) (int, error)
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Access),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		stateTTL:   cfg.Auth.StateTokenTTL,
		now:        time.Now,
		randRead:   rand.Read,
	}, nil
}

// IssueAccessToken signs a short-lived access token for the user.
func (s *jwtService) IssueAccessToken(user *entity.User) (string, error) {
	return s.sign(&service.Claims{
		Email: user.Email,
		Type:  entity.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID.String(),
		},
	}, s.accessTTL)
}

// IssueRefreshToken generates an opaque token and records its hash in the ledger.
// A hash collision is retried with a fresh value a bounded number of times.
func (s *jwtService) IssueRefreshToken(ctx context.Context, ledger repository.RefreshTokenRepository, userID uuid.UUID) (string, error) {
	for attempt := 1; ; attempt++ {
		raw, err := s.randomToken()
		if err != nil {
			return "", err
		}

		now := s.now()
		err = ledger.Create(ctx, &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: s.HashToken(raw),
			ExpiresAt: now.Add(s.refreshTTL),
			CreatedAt: now,
		})
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, repository.ErrDuplicateRefreshToken) || attempt >= refreshTokenAttempts {
			return "", errors.Wrap(err, "store refresh token")
		}
	}
}

// VerifyAccessToken checks signature, expiry and type of an access token.
func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	claims, err := s.verify(token, entity.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidOrExpiredToken.WrapMessage("malformed subject")
	}
	claims.UserID = userID

	return claims, nil
}

// IssueStateToken signs a short-lived OAuth state token carrying nonce.
func (s *jwtService) IssueStateToken(nonce string) (string, error) {
	return s.sign(&service.Claims{
		Nonce: nonce,
		Type:  entity.TokenTypeOAuthState,
	}, s.stateTTL)
}

// VerifyStateToken checks an OAuth state token and returns its claims.
func (s *jwtService) VerifyStateToken(token string) (*service.Claims, error) {
	return s.verify(token, entity.TokenTypeOAuthState)
}

// HashToken returns the hex SHA-256 of a raw refresh token.
func (s *jwtService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) sign(claims *service.Claims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) verify(token string, expected entity.TokenType) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidOrExpiredToken.WrapMessage(err.Error())
	}

	if claims.Type != expected {
		return nil, domainerrors.ErrWrongTokenType.WrapMessage("unexpected token type " + claims.Type.String())
	}

	return claims, nil
}

func (s *jwtService) randomToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := s.randRead(buf); err != nil {
		return "", errors.Wrap(err, "generate refresh token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
