package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techmarket/storefront/internal/hash"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return &repo.GormRepo{DB: db}
}

func seedUser(t *testing.T, r *repo.GormRepo, email, password, role string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		FullName:     "Test User",
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, r *repo.GormRepo, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: slug, Slug: slug}
	require.NoError(t, r.DB.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64) *models.Product {
	t.Helper()

	category := seedCategory(t, r, "cat-"+uuid.NewString()[:8])
	product := &models.Product{
		Name:         name,
		CategoryID:   category.ID,
		Price:        price,
		Stock:        100,
		Availability: models.AvailabilityInStock,
	}
	require.NoError(t, r.DB.Create(product).Error)
	return product
}

func testCtx() context.Context {
	return context.Background()
}
