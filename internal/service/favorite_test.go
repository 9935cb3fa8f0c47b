package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techmarket/storefront/internal/models"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &FavoriteService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "fav@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Speaker", 75)

	favorites, err := svc.Add(ctx, user.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	// Adding the same product again keeps a single entry.
	favorites, err = svc.Add(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestAddFavoriteValidation(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &FavoriteService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "fav2@example.com", "pw", models.RoleCustomer)

	_, err := svc.Add(ctx, user.ID, uuid.Nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(ctx, user.ID, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveAndClearFavorites(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &FavoriteService{Repo: r}
	ctx := testCtx()

	user := seedUser(t, r, "fav3@example.com", "pw", models.RoleCustomer)
	p1 := seedProduct(t, r, "Lamp", 30)
	p2 := seedProduct(t, r, "Desk", 150)

	_, err := svc.Add(ctx, user.ID, p1.ID)
	require.NoError(t, err)
	_, err = svc.Add(ctx, user.ID, p2.ID)
	require.NoError(t, err)

	favorites, err := svc.Remove(ctx, user.ID, p1.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, p2.ID, favorites[0].ProductID)

	// Removing an absent product is a no-op.
	favorites, err = svc.Remove(ctx, user.ID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, svc.Clear(ctx, user.ID))

	favorites, err = svc.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &FavoriteService{Repo: r}
	ctx := testCtx()

	alice := seedUser(t, r, "alice.fav@example.com", "pw", models.RoleCustomer)
	bob := seedUser(t, r, "bob.fav@example.com", "pw", models.RoleCustomer)
	product := seedProduct(t, r, "Chair", 90)

	_, err := svc.Add(ctx, alice.ID, product.ID)
	require.NoError(t, err)

	bobFavs, err := svc.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFavs)
}
