package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"freelancehub/internal/infrastructure/auth"
)

// AccessTokenCookie is the cookie the auth handlers set on login and
// register. Browser clients authenticate with it; API clients may send a
// Bearer header instead.
const AccessTokenCookie = "accessToken"

type AuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "You are not authenticated")
		}

		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
		}

		c.Set("uid", claims.UserID)
		c.Set("isSeller", claims.IsSeller)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// VerifyToken resolves a raw token outside the HTTP middleware chain, for
// callers that receive the token through other channels.
func (m *AuthMiddleware) VerifyToken(tokenString string) (userID string, isSeller bool, err error) {
	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		return "", false, err
	}
	return claims.UserID, claims.IsSeller, nil
}
