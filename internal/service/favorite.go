package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
)

type FavoriteService struct {
	Repo *repo.GormRepo
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	favorites, err := s.Repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

func (s *FavoriteService) Add(ctx context.Context, userID, productID uuid.UUID) ([]models.Favorite, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}

	exists, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	if err := s.Repo.AddFavorite(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, productID uuid.UUID) ([]models.Favorite, error) {
	if err := s.Repo.RemoveFavorite(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *FavoriteService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.Repo.ClearFavorites(ctx, userID)
}
