package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/techmarket/storefront/internal/models"
)

func (r *GormRepo) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) TopDeals(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("original_price > price").
		Order("(original_price - price) DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) RandomProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

type PopularProduct struct {
	Product   models.Product `json:"product"`
	TotalSold int64          `json:"total_sold"`
}

func (r *GormRepo) MostPopularProducts(ctx context.Context, limit int) ([]PopularProduct, error) {
	var rows []struct {
		ProductID uuid.UUID
		TotalSold int64
	}
	if err := r.DB.WithContext(ctx).Model(&models.OrderItem{}).
		Select("product_id, SUM(quantity) AS total_sold").
		Group("product_id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []PopularProduct{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	byID, err := r.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]PopularProduct, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		out = append(out, PopularProduct{Product: p, TotalSold: row.TotalSold})
	}
	return out, nil
}

func (r *GormRepo) TotalSales(ctx context.Context) (float64, error) {
	var total *float64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("SUM(total_price)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *GormRepo) TotalOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepo) NewCustomersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND created_at >= ?", models.RoleCustomer, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepo) LowStockProducts(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Select("id", "name", "stock").
		Where("stock < ?", threshold).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

type OrderSample struct {
	CreatedAt  time.Time
	TotalPrice float64
}

// OrderSamples feeds the time-bucketed aggregates, bucketing happens in
// the service so the query stays portable across drivers.
func (r *GormRepo) OrderSamples(ctx context.Context) ([]OrderSample, error) {
	var samples []OrderSample
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("created_at", "total_price").
		Order("created_at ASC").
		Scan(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}
