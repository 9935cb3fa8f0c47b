package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/service"
)

// respondError maps service sentinel errors onto HTTP statuses. Internal
// errors are logged with their cause but never leak raw error text to
// the client.
func respondError(c echo.Context, l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op, "status", http.StatusBadRequest, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn(op, "status", http.StatusBadRequest, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "user already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(op, "status", http.StatusBadRequest)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, service.ErrUnauthenticated):
		l.Warn(op, "status", http.StatusUnauthorized, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	case errors.Is(err, service.ErrInvalidToken):
		l.Warn(op, "status", http.StatusForbidden, "error", err)
		return echo.NewHTTPError(http.StatusForbidden, "invalid token")
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op, "status", http.StatusNotFound, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		l.Error(op, "status", http.StatusInternalServerError, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
