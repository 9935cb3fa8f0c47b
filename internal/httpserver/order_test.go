package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techmarket/storefront/internal/models"
)

func TestCreateOrderSnapshotsSubmittedPrices(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	login := env.signupAndLogin("buyer@example.com", "pw")
	product := env.seedProduct("Laptop", 999)

	rec := env.do(http.MethodPost, "/v1/api/order", login.AccessToken, map[string]any{
		"products": []map[string]any{
			{"product_id": product.ID, "quantity": 2, "price_at_purchase": 899.50},
		},
		"shipping_address": map[string]string{
			"street": "1 Main St", "city": "Springfield", "country": "US",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decodeJSON(t, rec, &order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, 1799.0, order.TotalPrice)
	assert.Equal(t, "Springfield", order.ShippingAddress.City)
}

func TestOrderListingIsAdminOnly(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	login := env.signupAndLogin("lister@example.com", "pw")
	product := env.seedProduct("Cable", 9)

	rec := env.do(http.MethodPost, "/v1/api/order", login.AccessToken, map[string]any{
		"products": []map[string]any{
			{"product_id": product.ID, "quantity": 1, "price_at_purchase": 9},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/v1/api/order", login.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodGet, "/v1/api/order/my/orders", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var mine []models.Order
	decodeJSON(t, rec, &mine)
	assert.Len(t, mine, 1)

	admin := env.loginAdmin()
	rec = env.do(http.MethodGet, "/v1/api/order", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []models.Order
	decodeJSON(t, rec, &all)
	assert.Len(t, all, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	login := env.signupAndLogin("status.buyer@example.com", "pw")
	product := env.seedProduct("Phone", 600)

	rec := env.do(http.MethodPost, "/v1/api/order", login.AccessToken, map[string]any{
		"products": []map[string]any{
			{"product_id": product.ID, "quantity": 1, "price_at_purchase": 600},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decodeJSON(t, rec, &order)

	admin := env.loginAdmin()
	path := "/v1/api/order/" + order.ID.String() + "/status"

	rec = env.do(http.MethodPut, path, admin.AccessToken, map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Order
	decodeJSON(t, rec, &updated)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	rec = env.do(http.MethodPut, path, admin.AccessToken, map[string]string{"status": "lost-in-space"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Customers cannot change statuses.
	rec = env.do(http.MethodPut, path, login.AccessToken, map[string]string{"status": "paid"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}
