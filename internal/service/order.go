package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/events"
	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Create snapshots the submitted lines into an immutable order. Unit
// prices are taken from the request as priceAtPurchase and are never
// re-read from the live catalog afterwards.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create")

	if len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: products required", ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Products))
	for _, line := range req.Products {
		if line.ProductID == uuid.Nil {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if line.Quantity == 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if line.PriceAtPurchase < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}

		items = append(items, models.OrderItem{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.PriceAtPurchase,
		})
		total += float64(line.Quantity) * line.PriceAtPurchase
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   models.PaymentCashOnDelivery,
		ShippingAddress: req.ShippingAddress,
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		l.Error("create_order_error", "error", err)
		return nil, err
	}

	// Best effort: the order stands even when clearing the cart fails.
	if cart, err := s.Repo.GetCartByUser(ctx, userID); err == nil {
		if err := s.Repo.ClearCartItems(ctx, cart.ID); err != nil {
			l.Error("cart_clear_error", "order_id", order.ID, "error", err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("cart_lookup_error", "order_id", order.ID, "error", err)
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalPrice,
	}); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	l.Info("order_created", "order_id", order.ID, "total", order.TotalPrice)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, limit, offset)
}

func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListUserOrders(ctx, userID, limit, offset)
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus validates membership in the status set only. Statuses are
// a flat label set, no transition adjacency is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.update_status")

	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":     "order_status_changed",
		"order_id": order.ID,
		"status":   status,
	}); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return err
	}
	return nil
}
