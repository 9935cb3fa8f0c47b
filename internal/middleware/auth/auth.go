package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/tokens"
)

type TokenAuth struct {
	JWTSecret []byte
}

func New(secret []byte) *TokenAuth {
	return &TokenAuth{JWTSecret: secret}
}

// RequireAuth verifies the bearer access token and stores the principal
// on the request context. Handlers read it back with UserID/Role, there
// is no ambient current-user state.
func (m *TokenAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		setPrincipal(c, claims)
		return next(c)
	}
}

func (m *TokenAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if Role(c) != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
