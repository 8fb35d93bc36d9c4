package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/craftcart/internal/cart"
	"github.com/vasiliy-maslov/craftcart/internal/order"
)

func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("asha", []cart.Item{{Product: product(1, 10), Quantity: 1}}, orderDay)
	require.NoError(t, err)
	return o
}

func TestMemoryRepository_CreateOrder_AssignsSequentialIDs(t *testing.T) {
	repo := order.NewRepository()
	ctx := context.Background()

	first := newStoredOrder(t)
	id, err := repo.CreateOrder(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, order.FirstOrderID, id)
	assert.Equal(t, id, first.ID)

	second := newStoredOrder(t)
	id, err = repo.CreateOrder(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, order.FirstOrderID+1, id)
}

func TestMemoryRepository_CreateOrder_RejectsStoredOrder(t *testing.T) {
	repo := order.NewRepository()
	ctx := context.Background()

	o := newStoredOrder(t)
	_, err := repo.CreateOrder(ctx, o)
	require.NoError(t, err)

	_, err = repo.CreateOrder(ctx, o)
	assert.ErrorIs(t, err, order.ErrOrderExists)
}

func TestMemoryRepository_GetOrderByID(t *testing.T) {
	repo := order.NewRepository()
	ctx := context.Background()

	o := newStoredOrder(t)
	id, err := repo.CreateOrder(ctx, o)
	require.NoError(t, err)

	found, err := repo.GetOrderByID(ctx, id)
	require.NoError(t, err)
	assert.Same(t, o, found)

	found, err = repo.GetOrderByID(ctx, 1)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.Nil(t, found)
}
