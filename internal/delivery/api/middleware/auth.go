package middleware

import (
	"strings"

	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes that require a valid access token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer access token to a user id and stores it on
// the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		userID, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
