package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/logging"
	auth "github.com/techmarket/storefront/internal/middleware/auth"
	"github.com/techmarket/storefront/internal/service"
)

type FavoriteHTTP struct {
	Svc *service.FavoriteService
}

func (h *FavoriteHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorite.list")

	userID, err := auth.UserID(c)
	if err != nil {
		l.Warn("list_favorites_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	favorites, err := h.Svc.List(ctx, userID)
	if err != nil {
		return respondError(c, l, "list_favorites_error", err)
	}
	return c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorite.add")

	userID, err := auth.UserID(c)
	if err != nil {
		l.Warn("add_favorite_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_favorite_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	favorites, err := h.Svc.Add(ctx, userID, req.ProductID)
	if err != nil {
		return respondError(c, l, "add_favorite_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Product added to favorites",
		"favorites": favorites,
	})
}

func (h *FavoriteHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorite.remove")

	userID, err := auth.UserID(c)
	if err != nil {
		l.Warn("remove_favorite_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	favorites, err := h.Svc.Remove(ctx, userID, productID)
	if err != nil {
		return respondError(c, l, "remove_favorite_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Product removed from favorites",
		"favorites": favorites,
	})
}

func (h *FavoriteHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "favorite.clear")

	userID, err := auth.UserID(c)
	if err != nil {
		l.Warn("clear_favorites_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := h.Svc.Clear(ctx, userID); err != nil {
		return respondError(c, l, "clear_favorites_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Favorites cleared"})
}
