package httpserver

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/service"
	"github.com/techmarket/storefront/internal/tokens"
	"github.com/techmarket/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		return respondError(c, l, "register_error", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered",
		"user":    user,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, l, "login_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"role":          res.Role,
		"user":          res.User,
		"expires_in":    tokens.AccessTTLLabel,
		"expires_at":    res.AccessExp.Unix(),
	})
}

// Refresh reads the refresh token from the JSON body. That is the one
// transport for it, never a header.
func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("refresh_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	accessToken, exp, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return respondError(c, l, "refresh_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": accessToken,
		"expires_in":   tokens.AccessTTLLabel,
		"expires_at":   exp.Unix(),
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("logout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Logout(ctx, req.RefreshToken); err != nil {
		return respondError(c, l, "logout_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (h *AuthHTTP) SendVerificationEmail(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	// TODO: wire a real mail provider; the storefront only needs the
	// acknowledgement for now.
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Verification email sent to %s", req.Email),
	})
}

func (h *AuthHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.list_customers")

	customers, err := h.Svc.ListCustomers(ctx)
	if err != nil {
		return respondError(c, l, "list_customers_error", err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *AuthHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.update_user")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateUser(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_user_error", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.delete_user")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		return respondError(c, l, "delete_user_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
