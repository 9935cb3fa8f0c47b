package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techmarket/storefront/internal/models"
	"github.com/techmarket/storefront/internal/transport"
)

func TestAddItemMergesQuantities(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "cart@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Keyboard", 49.99)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)

	// One line per product, quantities merged.
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(5), cart.Items[0].Quantity)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
}

func TestAddItemValidation(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "cart2@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Mouse", 19.99)

	_, err := svc.AddItem(ctx, user.ID, uuid.Nil, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddItem(ctx, user.ID, product.ID, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddItem(ctx, user.ID, uuid.New(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetCartEmptyForNewUser(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	user := seedUser(t, r, "fresh@example.com", "pw", models.RoleCustomer)

	cart, err := svc.GetCart(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestAddItemsSkipsUnknownProducts(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "bulk@example.com", "pw", models.RoleCustomer)
	known := seedProduct(t, r, "Monitor", 199)
	unknown := uuid.New()

	cart, skipped, err := svc.AddItems(ctx, user.ID, []transport.CartEntry{
		{ProductID: known.ID, Quantity: 2},
		{ProductID: unknown, Quantity: 1},
		{ProductID: known.ID, Quantity: 0},
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].Quantity)
	assert.ElementsMatch(t, []uuid.UUID{unknown, known.ID}, skipped)
}

func TestAddItemsEmptyCollection(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	user := seedUser(t, r, "empty@example.com", "pw", models.RoleCustomer)

	_, _, err := svc.AddItems(testCtx(), user.ID, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateItemQuantity(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "upd@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Headset", 89)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	cart, err := svc.UpdateItemQuantity(ctx, user.ID, product.ID, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(7), cart.Items[0].Quantity)

	_, err = svc.UpdateItemQuantity(ctx, user.ID, uuid.New(), 2)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateItemQuantity(ctx, user.ID, product.ID, 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateItemQuantityNoCart(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	user := seedUser(t, r, "nocart@example.com", "pw", models.RoleCustomer)

	_, err := svc.UpdateItemQuantity(testCtx(), user.ID, uuid.New(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "remove@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Webcam", 59)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	// Removing a product that was never added succeeds and leaves the
	// cart unchanged.
	cart, err := svc.RemoveItem(ctx, user.ID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = svc.RemoveItem(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "clear@example.com", "pw", models.RoleCustomer)
	p1 := seedProduct(t, r, "SSD", 120)
	p2 := seedProduct(t, r, "RAM", 80)

	_, err := svc.AddItem(ctx, user.ID, p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, user.ID, p2.ID, 2)
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearWithoutCart(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	user := seedUser(t, r, "neverbought@example.com", "pw", models.RoleCustomer)

	_, err := svc.Clear(testCtx(), user.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
