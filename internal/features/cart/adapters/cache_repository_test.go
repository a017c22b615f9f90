package adapters

import (
	"context"
	"testing"
	"time"

	"coffee-checkout/internal/core/cache"
	"coffee-checkout/internal/features/cart/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*miniredis.Miniredis, *CacheCartRepository) {
	t.Helper()
	mr := miniredis.RunT(t)

	store, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return mr, NewCacheCartRepository(store)
}

func TestCacheCartRepository_SaveLoad(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()

	c := &domain.Cart{Items: []domain.Item{
		{ID: 1, Name: "Капучино", Price: decimal.NewFromInt(180), Quantity: 2},
	}}
	require.NoError(t, repo.Save(ctx, 42, c))
	assert.True(t, mr.Exists("cart:42"))
	assert.Positive(t, mr.TTL("cart:42"))

	loaded, err := repo.Load(ctx, 42)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(180).Equal(loaded.Items[0].Price))
}

func TestCacheCartRepository_LoadMissing(t *testing.T) {
	_, repo := setupRepo(t)

	loaded, err := repo.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
}

func TestCacheCartRepository_LoadCorrupt(t *testing.T) {
	mr, repo := setupRepo(t)
	require.NoError(t, mr.Set("cart:7", "{not json"))

	loaded, err := repo.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
}

func TestCacheCartRepository_LoadDropsInvalidLines(t *testing.T) {
	mr, repo := setupRepo(t)
	require.NoError(t, mr.Set("cart:7", `{"v":1,"data":{"items":[{"id":1,"price":100,"quantity":0},{"id":2,"price":50,"quantity":1}]}}`))

	loaded, err := repo.Load(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].ID)
}

func TestCacheCartRepository_Exists(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, 42, &domain.Cart{}))
	ok, err = repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok, "an emptied cart is still stored")

	mr.FastForward(cartTTL + time.Second)
	ok, err = repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheCartRepository_StoreDown(t *testing.T) {
	mr, repo := setupRepo(t)
	mr.Close()

	_, err := repo.Load(context.Background(), 1)
	assert.Error(t, err)
}

func TestCacheCartRepository_ExistsStoreDown(t *testing.T) {
	mr, repo := setupRepo(t)
	mr.Close()

	_, err := repo.Exists(context.Background(), 1)
	assert.Error(t, err)
}
