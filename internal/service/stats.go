package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/cache"
	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
)

const (
	storefrontSampleSize = 8
	lowStockThreshold    = 5
	newCustomerWindow    = 30 * 24 * time.Hour
)

type StatsService struct {
	Repo  *repo.GormRepo
	Cache *cache.Cache
}

type AdminStats struct {
	TotalSales    float64          `json:"total_sales"`
	TotalOrders   int64            `json:"total_orders"`
	NewCustomers  int64            `json:"new_customers"`
	LowStockItems []models.Product `json:"low_stock_items"`
}

type MonthlyPoint struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int64   `json:"orders"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type ActivityPoint struct {
	Day       string `json:"day"`
	Visitors  int64  `json:"visitors"`
	Purchases int64  `json:"purchases"`
}

func (s *StatsService) ProductsOfTheWeek(ctx context.Context) ([]models.Product, error) {
	return s.Repo.FeaturedProducts(ctx, storefrontSampleSize)
}

func (s *StatsService) TopDeals(ctx context.Context) ([]models.Product, error) {
	return s.Repo.TopDeals(ctx, storefrontSampleSize)
}

func (s *StatsService) Recommended(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	if _, err := s.Repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.RandomProducts(ctx, storefrontSampleSize)
}

func (s *StatsService) MostPopular(ctx context.Context) ([]repo.PopularProduct, error) {
	return s.Repo.MostPopularProducts(ctx, storefrontSampleSize)
}

func (s *StatsService) Admin(ctx context.Context) (*AdminStats, error) {
	l := logging.FromContext(ctx).With("svc", "stats.admin")

	var cached AdminStats
	if hit, err := s.Cache.GetJSON(ctx, cache.KeyAdminStats, &cached); err != nil {
		l.Warn("cache_read_error", "error", err)
	} else if hit {
		return &cached, nil
	}

	totalSales, err := s.Repo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.Repo.TotalOrders(ctx)
	if err != nil {
		return nil, err
	}
	newCustomers, err := s.Repo.NewCustomersSince(ctx, time.Now().Add(-newCustomerWindow))
	if err != nil {
		return nil, err
	}
	lowStock, err := s.Repo.LowStockProducts(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	if lowStock == nil {
		lowStock = []models.Product{}
	}

	stats := &AdminStats{
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		NewCustomers:  newCustomers,
		LowStockItems: lowStock,
	}
	if err := s.Cache.SetJSON(ctx, cache.KeyAdminStats, stats, cache.TTLStats); err != nil {
		l.Warn("cache_write_error", "error", err)
	}
	return stats, nil
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (s *StatsService) MonthlySales(ctx context.Context) ([]MonthlyPoint, error) {
	l := logging.FromContext(ctx).With("svc", "stats.monthly_sales")

	var cached []MonthlyPoint
	if hit, err := s.Cache.GetJSON(ctx, cache.KeyMonthlySales, &cached); err != nil {
		l.Warn("cache_read_error", "error", err)
	} else if hit {
		return cached, nil
	}

	samples, err := s.Repo.OrderSamples(ctx)
	if err != nil {
		return nil, err
	}

	sales := make([]float64, 12)
	orders := make([]int64, 12)
	for _, sample := range samples {
		m := int(sample.CreatedAt.Month()) - 1
		sales[m] += sample.TotalPrice
		orders[m]++
	}

	points := make([]MonthlyPoint, 0, 12)
	for m := 0; m < 12; m++ {
		if orders[m] == 0 {
			continue
		}
		points = append(points, MonthlyPoint{Month: monthNames[m], Sales: sales[m], Orders: orders[m]})
	}

	if err := s.Cache.SetJSON(ctx, cache.KeyMonthlySales, points, cache.TTLStats); err != nil {
		l.Warn("cache_write_error", "error", err)
	}
	return points, nil
}

func (s *StatsService) RevenueGrowth(ctx context.Context) ([]RevenuePoint, error) {
	monthly, err := s.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]RevenuePoint, 0, len(monthly))
	for _, m := range monthly {
		// Cost is not tracked, so profit currently equals revenue.
		points = append(points, RevenuePoint{Month: m.Month, Revenue: m.Sales, Profit: m.Sales})
	}
	return points, nil
}

func (s *StatsService) CustomerActivity(ctx context.Context) ([]ActivityPoint, error) {
	l := logging.FromContext(ctx).With("svc", "stats.customer_activity")

	var cached []ActivityPoint
	if hit, err := s.Cache.GetJSON(ctx, cache.KeyCustomerActivity, &cached); err != nil {
		l.Warn("cache_read_error", "error", err)
	} else if hit {
		return cached, nil
	}

	samples, err := s.Repo.OrderSamples(ctx)
	if err != nil {
		return nil, err
	}

	purchases := make([]int64, 7)
	for _, sample := range samples {
		purchases[int(sample.CreatedAt.Weekday())]++
	}

	points := make([]ActivityPoint, 0, 7)
	for d := 0; d < 7; d++ {
		if purchases[d] == 0 {
			continue
		}
		points = append(points, ActivityPoint{
			Day:       dayNames[d],
			Visitors:  purchases[d] * 10,
			Purchases: purchases[d],
		})
	}

	if err := s.Cache.SetJSON(ctx, cache.KeyCustomerActivity, points, cache.TTLStats); err != nil {
		l.Warn("cache_write_error", "error", err)
	}
	return points, nil
}

func (s *StatsService) AverageOrderValue(ctx context.Context) (float64, error) {
	totalSales, err := s.Repo.TotalSales(ctx)
	if err != nil {
		return 0, err
	}
	totalOrders, err := s.Repo.TotalOrders(ctx)
	if err != nil {
		return 0, err
	}
	if totalOrders == 0 {
		return 0, nil
	}
	return totalSales / float64(totalOrders), nil
}
