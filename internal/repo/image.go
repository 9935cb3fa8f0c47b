package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/models"
)

func (r *GormRepo) CreateImage(ctx context.Context, image *models.Image) error {
	return r.DB.WithContext(ctx).Create(image).Error
}

func (r *GormRepo) ListImagesByProduct(ctx context.Context, productID uuid.UUID) ([]models.Image, error) {
	var images []models.Image
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("uploaded_at ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormRepo) GetImageByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	var image models.Image
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GormRepo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Image{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
