package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/transport"
)

func TestCreateOrderTotalsFromSubmittedPrices(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "order@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Laptop", 999)

	// The submitted price wins over the live catalog price.
	order, err := svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{
			{ProductID: product.ID, Quantity: 2, PriceAtPurchase: 899.50},
		},
		ShippingAddress: models.ShippingAddress{Street: "1 Main St", City: "Springfield", Country: "US"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, 1799.0, order.TotalPrice)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 899.50, order.Items[0].PriceAtPurchase)
}

func TestCreateOrderClearsCart(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	orders := &OrderService{Repo: r}
	carts := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "checkout@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Tablet", 350)

	_, err := carts.AddItem(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)

	_, err = orders.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{
			{ProductID: product.ID, Quantity: 3, PriceAtPurchase: 350},
		},
	})
	require.NoError(t, err)

	cart, err := carts.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateOrderValidation(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "badorder@example.com", "pw", models.RoleCustomer)

	_, err := svc.Create(ctx, user.ID, transport.CreateOrderRequest{})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{{ProductID: uuid.Nil, Quantity: 1, PriceAtPurchase: 5}},
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{{ProductID: uuid.New(), Quantity: 0, PriceAtPurchase: 5}},
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{{ProductID: uuid.New(), Quantity: 1, PriceAtPurchase: -1}},
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "status@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Phone", 600)

	order, err := svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{{ProductID: product.ID, Quantity: 1, PriceAtPurchase: 600}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	// Statuses are a flat set, moving backwards is allowed.
	updated, err = svc.UpdateStatus(ctx, order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)

	_, err = svc.UpdateStatus(ctx, order.ID, "teleported")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, uuid.New(), models.OrderStatusPaid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersForUser(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := testCtx()

	alice := seedUser(t, r, "alice@example.com", "pw", models.RoleCustomer)
	bob := seedUser(t, r, "bob@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Charger", 25)

	line := []transport.OrderLine{{ProductID: product.ID, Quantity: 1, PriceAtPurchase: 25}}
	_, err := svc.Create(ctx, alice.ID, transport.CreateOrderRequest{Products: line})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice.ID, transport.CreateOrderRequest{Products: line})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, transport.CreateOrderRequest{Products: line})
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteOrder(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "del@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Cable", 9)

	order, err := svc.Create(ctx, user.ID, transport.CreateOrderRequest{
		Products: []transport.OrderLine{{ProductID: product.ID, Quantity: 1, PriceAtPurchase: 9}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.ID))

	_, err = svc.GetByID(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var itemCount int64
	require.NoError(t, r.DB.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	err = svc.Delete(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
