package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/techmarket/storefront/internal/models"
)

func (r *GormRepo) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite is idempotent, adding an already present product keeps the
// set unchanged.
func (r *GormRepo) AddFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	fav := models.Favorite{UserID: userID, ProductID: productID}
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		FirstOrCreate(&fav).Error
}

func (r *GormRepo) RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{}).Error
}

func (r *GormRepo) ClearFavorites(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Favorite{}).Error
}
