// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/service"
)

// userIDContextKey is where Authenticate stores the caller's account ID for
// handlers.
const userIDContextKey = "userID"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. An absent header
// is reported as such; every decode failure collapses into the same generic
// 401 so callers learn nothing about why a token was rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.tokenSvc == nil {
			return domainerrors.ErrAuthNotConfigured
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthHeaderMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}
