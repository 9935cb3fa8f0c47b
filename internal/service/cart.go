package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

// AddItem merges quantities when a line for the product already exists,
// a cart holds at most one line per product.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*models.Cart, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	exists, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AddCartItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Repo.GetCartByUser(ctx, userID)
}

// AddItems applies the same merge per entry. Entries referencing unknown
// products (or carrying a zero quantity) are skipped, and the skipped
// product ids are reported back for auditability.
func (s *CartService) AddItems(ctx context.Context, userID uuid.UUID, entries []transport.CartEntry) (*models.Cart, []uuid.UUID, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_items")

	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("%w: collection must contain products", ErrValidation)
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	known, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	skipped := []uuid.UUID{}
	for _, e := range entries {
		if _, ok := known[e.ProductID]; !ok || e.Quantity == 0 {
			skipped = append(skipped, e.ProductID)
			continue
		}
		if err := s.Repo.AddCartItem(ctx, cart.ID, e.ProductID, e.Quantity); err != nil {
			return nil, nil, err
		}
	}
	if len(skipped) > 0 {
		l.Warn("entries_skipped", "count", len(skipped))
	}

	cart, err = s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return cart, skipped, nil
}

// GetCart never fails on a missing cart, a user who has not added
// anything yet simply sees an empty item list.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*models.Cart, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}
		return nil, err
	}

	if err := s.Repo.UpdateCartItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item not found in cart", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.GetCartByUser(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}
		return nil, err
	}

	if err := s.Repo.RemoveCartItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}
	return s.Repo.GetCartByUser(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}
		return nil, err
	}

	if err := s.Repo.ClearCartItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.Repo.GetCartByUser(ctx, userID)
}
