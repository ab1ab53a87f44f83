package orders

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/api/cart"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/kv"
	"github.com/foodie-express/foodie-server/internal/types"
)

func newTestService(t *testing.T) (*OrderServiceImpl, cart.CartService) {
	t.Helper()
	logger := slog.Default()
	repo := NewKVOrderRepo(kv.NewMemoryStore(), logger)
	cartSvc := cart.NewCartService(logger)
	catalogSvc := catalog.NewCatalogService(logger)
	return NewOrderService(repo, cartSvc, catalogSvc, logger), cartSvc
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Checkout(context.Background(), "user-1", "rest-001")

	var ve *api.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Your cart is empty", ve.Message)
}

func TestCheckout_PersistsOrderAndClearsCart(t *testing.T) {
	svc, cartSvc := newTestService(t)
	ctx := context.Background()

	catalogSvc := catalog.NewCatalogService(slog.Default())
	item, err := catalogSvc.GetMenuItem(ctx, "rest-001", "item-001")
	require.NoError(t, err)

	cartSvc.AddItem(ctx, "user-1", *item, nil)
	cartSvc.AddItem(ctx, "user-1", *item, nil)

	order, err := svc.Checkout(ctx, "user-1", "rest-001")
	require.NoError(t, err)

	assert.Equal(t, types.StatusPending, order.Status)
	assert.Equal(t, item.Price*2, order.Subtotal)
	assert.Equal(t, order.Subtotal+order.DeliveryFee, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.Nil(t, order.AcceptedAt)
	assert.Nil(t, order.CompletedAt)

	assert.Empty(t, cartSvc.Items(ctx, "user-1"), "checkout must empty the cart")

	persisted, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order.ID, persisted[0].ID)

	txs, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, order.ID, txs[0].OrderID)
	assert.Equal(t, order.Total, txs[0].Amount)
	assert.Equal(t, "mock_card", txs[0].Method)
}

func TestCheckout_UnknownRestaurant(t *testing.T) {
	svc, cartSvc := newTestService(t)
	ctx := context.Background()

	catalogSvc := catalog.NewCatalogService(slog.Default())
	item, err := catalogSvc.GetMenuItem(ctx, "rest-001", "item-001")
	require.NoError(t, err)
	cartSvc.AddItem(ctx, "user-1", *item, nil)

	_, err = svc.Checkout(ctx, "user-1", "rest-999")
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.NotEmpty(t, cartSvc.Items(ctx, "user-1"), "cart survives a failed checkout")
}

func TestAdvanceStatus_ForwardOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seeded, err := svc.SeedMockOrders(ctx, 1, types.StatusPending)
	require.NoError(t, err)
	id := seeded[0].ID

	order, err := svc.AdvanceStatus(ctx, id, types.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, types.StatusProcessing, order.Status)
	assert.NotNil(t, order.AcceptedAt, "accepting an order stamps AcceptedAt")

	_, err = svc.AdvanceStatus(ctx, id, types.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	order, err = svc.AdvanceStatus(ctx, id, types.StatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, order.CompletedAt)

	_, err = svc.AdvanceStatus(ctx, id, types.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition, "completed is terminal")
}

func TestAdvanceStatus_CancelFromAnyNonTerminal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seeded, err := svc.SeedMockOrders(ctx, 1, types.StatusOutForDelivery)
	require.NoError(t, err)

	order, err := svc.AdvanceStatus(ctx, seeded[0].ID, types.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCancelled, order.Status)

	_, err = svc.AdvanceStatus(ctx, seeded[0].ID, types.StatusProcessing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceStatus_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdvanceStatus(context.Background(), "no-such-order", types.StatusProcessing)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestSeedMockOrders_Bounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var ve *api.ValidationError
	_, err := svc.SeedMockOrders(ctx, 0, types.StatusPending)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.SeedMockOrders(ctx, 101, types.StatusPending)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.SeedMockOrders(ctx, 5, types.OrderStatus("bogus"))
	assert.ErrorAs(t, err, &ve)
}

func TestSeedMockOrders_AppendsToPersistedList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SeedMockOrders(ctx, 3, types.StatusPending)
	require.NoError(t, err)
	_, err = svc.SeedMockOrders(ctx, 2, types.StatusCompleted)
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestGenerateMockOrder_StatusConsistency(t *testing.T) {
	for i := 0; i < 50; i++ {
		o := GenerateMockOrder(types.StatusCompleted)
		require.NotNil(t, o.AcceptedAt)
		require.NotNil(t, o.CompletedAt)
		require.NotNil(t, o.Rating)
		assert.True(t, o.CompletedAt.After(*o.AcceptedAt))
		assert.GreaterOrEqual(t, *o.Rating, 4)
		assert.LessOrEqual(t, *o.Rating, 5)
	}

	for i := 0; i < 50; i++ {
		o := GenerateMockOrder(types.StatusPending)
		assert.Nil(t, o.AcceptedAt)
		assert.Nil(t, o.CompletedAt)
		assert.Nil(t, o.Rating)
		assert.Nil(t, o.Tip)
	}
}

func TestGenerateMockOrder_Totals(t *testing.T) {
	for i := 0; i < 50; i++ {
		o := GenerateMockOrder(types.StatusProcessing)
		require.NotEmpty(t, o.Items)

		var subtotal int64
		for _, it := range o.Items {
			assert.Greater(t, it.Qty, 0)
			assert.Greater(t, it.Price, int64(0))
			subtotal += it.Price * int64(it.Qty)
		}
		assert.Equal(t, subtotal, o.Subtotal)
		assert.Equal(t, subtotal+o.DeliveryFee, o.Total)
		assert.NotEmpty(t, o.ID)
		assert.NotEmpty(t, o.RestaurantID)
		assert.NotEmpty(t, o.CustomerName)
	}
}
