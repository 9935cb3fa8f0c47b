package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/search"
	"github.com/techmarket/storefront/internal/transport"
)

type CatalogService struct {
	Repo  *repo.GormRepo
	Index *search.Index
}

func (s *CatalogService) List(ctx context.Context, f repo.ProductFilter, page, size int) (*transport.ProductPage, error) {
	offset, size := pageBounds(page, size)
	products, count, err := s.Repo.ListProducts(ctx, f, size, offset)
	if err != nil {
		return nil, err
	}
	return productPage(products, count, page, size), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// ListByCategory accepts either a category id or a slug.
func (s *CatalogService) ListByCategory(ctx context.Context, category string, page, size int) (*transport.ProductPage, error) {
	categoryID, err := uuid.Parse(category)
	if err != nil {
		cat, err := s.Repo.GetCategoryBySlug(ctx, category)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: category not found", ErrNotFound)
			}
			return nil, err
		}
		categoryID = cat.ID
	}

	offset, size := pageBounds(page, size)
	products, count, err := s.Repo.ListProductsByCategory(ctx, categoryID, size, offset)
	if err != nil {
		return nil, err
	}
	return productPage(products, count, page, size), nil
}

// Create auto-creates the category from its slug when it does not exist
// yet, mirroring how the back-office submits new products.
func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if req.Name == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: name and category required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	category, err := s.Repo.GetCategoryBySlug(ctx, req.Category)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category = &models.Category{
			Name: titleFromSlug(req.Category),
			Slug: req.Category,
		}
		if err := s.Repo.CreateCategory(ctx, category); err != nil {
			return nil, err
		}
	}

	availability := req.Availability
	if availability == "" {
		availability = models.AvailabilityInStock
	}

	product := &models.Product{
		Name:          req.Name,
		CategoryID:    category.ID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		MainImage:     req.MainImage,
		Description:   req.Description,
		Brand:         req.Brand,
		Stock:         req.Stock,
		Availability:  availability,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	if err := s.Index.IndexProduct(ctx, product); err != nil {
		l.Error("es_index_error", "product_id", product.ID, "error", err)
	}

	l.Info("product_created", "product_id", product.ID)
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update")

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.MainImage != nil {
		updates["main_image"] = *req.MainImage
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsOnSale != nil {
		updates["is_on_sale"] = *req.IsOnSale
	}

	product, err := s.Repo.UpdateProduct(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	if err := s.Index.IndexProduct(ctx, product); err != nil {
		l.Error("es_index_error", "product_id", product.ID, "error", err)
	}
	return product, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete")

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return err
	}

	if err := s.Index.DeleteProduct(ctx, id.String()); err != nil {
		l.Error("es_delete_error", "product_id", id, "error", err)
	}
	return nil
}

func (s *CatalogService) AddImage(ctx context.Context, productID uuid.UUID, url, altText string) (*models.Image, error) {
	exists, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	image := &models.Image{
		URL:       url,
		AltText:   altText,
		ProductID: productID,
	}
	if err := s.Repo.CreateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *CatalogService) ImagesByProduct(ctx context.Context, productID uuid.UUID) ([]models.Image, error) {
	images, err := s.Repo.ListImagesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.Image{}
	}
	return images, nil
}

func (s *CatalogService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: image not found", ErrNotFound)
		}
		return err
	}
	return nil
}

func pageBounds(page, size int) (offset, outSize int) {
	if size <= 0 {
		size = 10
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * size, size
}

func productPage(products []models.Product, count int64, page, size int) *transport.ProductPage {
	if products == nil {
		products = []models.Product{}
	}
	totalPages := count / int64(size)
	if count%int64(size) != 0 {
		totalPages++
	}
	if page <= 0 {
		page = 1
	}
	return &transport.ProductPage{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func titleFromSlug(slug string) string {
	if slug == "" {
		return slug
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}
