package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techmarket/storefront/internal/hash"
	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/repo"
	"github.com/techmarket/storefront/internal/service"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))

	store := &repo.GormRepo{DB: db}
	jwtSecret := []byte("test-access-secret")

	authSvc := &service.AuthService{
		Repo:          store,
		JWTSecret:     jwtSecret,
		RefreshSecret: []byte("test-refresh-secret"),
	}
	catalogSvc := &service.CatalogService{Repo: store}

	e := echo.New()
	Register(e, &Deps{
		Auth:     &AuthHTTP{Svc: authSvc},
		Cart:     &CartHTTP{Svc: &service.CartService{Repo: store}},
		Order:    &OrderHTTP{Svc: &service.OrderService{Repo: store}},
		Favorite: &FavoriteHTTP{Svc: &service.FavoriteService{Repo: store}},
		Product:  &ProductHTTP{Svc: catalogSvc},
		Image:    &ImageHTTP{Svc: catalogSvc, UploadDir: t.TempDir()},
		Stats:    &StatsHTTP{Svc: &service.StatsService{Repo: store}},

		JWTSecret: jwtSecret,
		UploadDir: t.TempDir(),
	})

	return &testEnv{T: t, E: e, Repo: store}
}

func (env *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	ExpiresIn    string `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (env *testEnv) signupAndLogin(email, password string) loginResponse {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/v1/api/user/signup", "", map[string]string{
		"full_name": "Test User",
		"email":     email,
		"password":  password,
	})
	require.Equal(env.T, http.StatusCreated, rec.Code)

	return env.login(email, password)
}

func (env *testEnv) login(email, password string) loginResponse {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/v1/api/user/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp loginResponse
	decodeJSON(env.T, rec, &resp)
	require.NotEmpty(env.T, resp.AccessToken)
	return resp
}

func (env *testEnv) loginAdmin() loginResponse {
	env.T.Helper()

	pwHash, err := hash.HashPassword("admin-password")
	require.NoError(env.T, err)
	admin := &models.User{
		FullName:     "Store Admin",
		Email:        "admin@example.com",
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}
	require.NoError(env.T, env.Repo.DB.Create(admin).Error)

	return env.login("admin@example.com", "admin-password")
}

func (env *testEnv) seedProduct(name string, price float64) *models.Product {
	env.T.Helper()

	category := &models.Category{Name: name + " category", Slug: "slug-" + name}
	require.NoError(env.T, env.Repo.DB.Create(category).Error)

	product := &models.Product{
		Name:         name,
		CategoryID:   category.ID,
		Price:        price,
		Stock:        50,
		Availability: models.AvailabilityInStock,
	}
	require.NoError(env.T, env.Repo.DB.Create(product).Error)
	return product
}
