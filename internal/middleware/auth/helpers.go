package auth

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/tokens"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

func setPrincipal(c echo.Context, claims *tokens.AccessClaims) {
	c.Set(ctxUserID, claims.Subject)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, claims.Role)
}

func UserID(c echo.Context) (uuid.UUID, error) {
	v, ok := c.Get(ctxUserID).(string)
	if !ok || v == "" {
		return uuid.Nil, errors.New("unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return id, nil
}

func Role(c echo.Context) string {
	v, _ := c.Get(ctxRole).(string)
	return v
}
