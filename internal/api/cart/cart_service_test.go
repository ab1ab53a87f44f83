package cart

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodie-express/foodie-server/internal/types"
)

var margherita = types.MenuItem{
	ID: "item-001", Name: "Margherita", Price: 1250, Category: "Pizza", Available: true,
}

var tiramisu = types.MenuItem{
	ID: "item-003", Name: "Tiramisu", Price: 650, Category: "Desserts", Available: true,
}

func newTestService() *CartServiceImpl {
	return NewCartService(slog.Default())
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	const n = 4
	for i := 0; i < n; i++ {
		s.AddItem(ctx, "u1", margherita, nil)
	}

	items := s.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Quantity)
	assert.Equal(t, int64(n)*margherita.Price, s.Total(ctx, "u1"))
}

func TestAddItemRetainsOriginalCustomizations(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, map[string]string{"Size": "Large"})
	s.AddItem(ctx, "u1", margherita, map[string]string{"Size": "Regular"})

	items := s.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Large", items[0].SelectedCustomizations["Size"])
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.AddItem(ctx, "u1", tiramisu, nil)
	s.UpdateQuantity(ctx, "u1", margherita.ID, 0)

	items := s.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, tiramisu.ID, items[0].Item.ID)
	assert.Equal(t, tiramisu.Price, s.Total(ctx, "u1"))
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.UpdateQuantity(ctx, "u1", margherita.ID, -3)

	assert.Empty(t, s.Items(ctx, "u1"))
	assert.Zero(t, s.Total(ctx, "u1"))
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.UpdateQuantity(ctx, "u1", margherita.ID, 7)

	items := s.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 7*margherita.Price, s.Total(ctx, "u1"))
}

func TestRemoveItemUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.RemoveItem(ctx, "u1", "no-such-item")

	assert.Len(t, s.Items(ctx, "u1"), 1)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.AddItem(ctx, "u1", tiramisu, nil)
	s.Clear(ctx, "u1")

	assert.Empty(t, s.Items(ctx, "u1"))
	assert.Zero(t, s.Total(ctx, "u1"))
}

func TestCartsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	s.AddItem(ctx, "u2", tiramisu, nil)

	assert.Equal(t, margherita.Price, s.Total(ctx, "u1"))
	assert.Equal(t, tiramisu.Price, s.Total(ctx, "u2"))
}

func TestItemsReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	s.AddItem(ctx, "u1", margherita, nil)
	items := s.Items(ctx, "u1")
	items[0].Quantity = 99

	fresh := s.Items(ctx, "u1")
	assert.Equal(t, 1, fresh[0].Quantity)
}
