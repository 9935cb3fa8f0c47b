package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/service"
)

type StatsHTTP struct {
	Svc *service.StatsService
}

func (h *StatsHTTP) ProductsOfTheWeek(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.products_of_the_week")

	products, err := h.Svc.ProductsOfTheWeek(ctx)
	if err != nil {
		return respondError(c, l, "products_of_the_week_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StatsHTTP) TopDeals(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.top_deals")

	products, err := h.Svc.TopDeals(ctx)
	if err != nil {
		return respondError(c, l, "top_deals_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StatsHTTP) Recommended(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.recommended")

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	products, err := h.Svc.Recommended(ctx, userID)
	if err != nil {
		return respondError(c, l, "recommended_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StatsHTTP) MostPopular(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.most_popular")

	products, err := h.Svc.MostPopular(ctx)
	if err != nil {
		return respondError(c, l, "most_popular_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StatsHTTP) Admin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.admin")

	stats, err := h.Svc.Admin(ctx)
	if err != nil {
		return respondError(c, l, "admin_stats_error", err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *StatsHTTP) Monthly(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.monthly")

	points, err := h.Svc.MonthlySales(ctx)
	if err != nil {
		return respondError(c, l, "monthly_sales_error", err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *StatsHTTP) RevenueGrowth(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.revenue_growth")

	points, err := h.Svc.RevenueGrowth(ctx)
	if err != nil {
		return respondError(c, l, "revenue_growth_error", err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *StatsHTTP) CustomerActivity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.customer_activity")

	points, err := h.Svc.CustomerActivity(ctx)
	if err != nil {
		return respondError(c, l, "customer_activity_error", err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *StatsHTTP) AverageOrderValue(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.average_order_value")

	aov, err := h.Svc.AverageOrderValue(ctx)
	if err != nil {
		return respondError(c, l, "average_order_value_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"average_order_value": aov})
}
