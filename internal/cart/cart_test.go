package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	c := &Cart{Items: []Item{
		{ProductID: "p1", Price: decimal.RequireFromString("100"), Quantity: 2},
		{ProductID: "p2", Price: decimal.RequireFromString("50"), Quantity: 1},
	}}
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("250")))

	empty := &Cart{}
	assert.True(t, empty.Subtotal().IsZero())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	in := &Cart{UserID: "u1", Items: []Item{{ProductID: "p1", Price: decimal.NewFromInt(10), Quantity: 3}}}
	require.NoError(t, store.Set(ctx, "u1", in))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	// mutating the returned copy must not affect the stored cart
	got.Items[0].Quantity = 99
	again, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Items[0].Quantity)

	require.NoError(t, store.Clear(ctx, "u1"))
	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
