package cart

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a live Redis; set REDIS_TEST_ADDR to enable.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisStore(client)
	userID := "test-" + uuid.NewString()
	t.Cleanup(func() { _ = store.Clear(ctx, userID) })

	_, err := store.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	in := &Cart{UserID: userID, Items: []Item{
		{ProductID: "p1", ProductName: "Jar of Honey", Price: decimal.RequireFromString("199.90"), Quantity: 2},
	}}
	require.NoError(t, store.Set(ctx, userID, in))

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("199.90")))
	assert.True(t, got.Subtotal().Equal(decimal.RequireFromString("399.80")))

	require.NoError(t, store.Clear(ctx, userID))
	_, err = store.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}
