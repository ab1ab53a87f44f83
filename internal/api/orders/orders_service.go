package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodie-express/foodie-server/app/observability/metrics"
	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/api/cart"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/types"
)

// ErrInvalidTransition is returned when an order status move violates
// the forward-only lifecycle.
var ErrInvalidTransition = errors.New("invalid order status transition")

var _ OrderService = (*OrderServiceImpl)(nil)

type OrderService interface {
	// Checkout builds an order from the user's cart, persists it, records
	// a mock payment transaction and clears the cart.
	Checkout(ctx context.Context, userID, restaurantID string) (*types.Order, error)
	ListOrders(ctx context.Context) ([]types.Order, error)
	GetOrder(ctx context.Context, orderID string) (*types.Order, error)
	// AdvanceStatus moves an order to the given status, enforcing the
	// transition table.
	AdvanceStatus(ctx context.Context, orderID string, status types.OrderStatus) (*types.Order, error)
	// SeedMockOrders appends generated demo orders to the persisted list.
	SeedMockOrders(ctx context.Context, count int, status types.OrderStatus) ([]types.Order, error)
	ListTransactions(ctx context.Context) ([]types.Transaction, error)
}

// OrderServiceImpl serializes mutations with a mutex: the blob is
// read-modify-write and the HTTP server is concurrent even though the
// modeled client was not.
type OrderServiceImpl struct {
	logger  *slog.Logger
	repo    OrderRepo
	cart    cart.CartService
	catalog catalog.CatalogService
	metrics *metrics.AppMetrics

	mu sync.Mutex
}

func NewOrderService(repo OrderRepo, cartService cart.CartService, catalogService catalog.CatalogService, logger *slog.Logger) *OrderServiceImpl {
	return &OrderServiceImpl{
		logger:  logger,
		repo:    repo,
		cart:    cartService,
		catalog: catalogService,
		metrics: metrics.Get(),
	}
}

func (s *OrderServiceImpl) Checkout(ctx context.Context, userID, restaurantID string) (*types.Order, error) {
	items := s.cart.Items(ctx, userID)
	if len(items) == 0 {
		return nil, api.NewValidationError("Your cart is empty")
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	subtotal := s.cart.Total(ctx, userID)
	order := types.Order{
		ID:             uuid.NewString(),
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Items:          make([]types.OrderItem, 0, len(items)),
		Subtotal:       subtotal,
		DeliveryFee:    restaurant.DeliveryFee,
		Total:          subtotal + restaurant.DeliveryFee,
		Status:         types.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	for _, ci := range items {
		order.Items = append(order.Items, types.OrderItem{
			ID:    ci.Item.ID,
			Name:  ci.Item.Name,
			Qty:   ci.Quantity,
			Price: ci.Item.Price,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	orders = append(orders, order)
	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	tx := types.Transaction{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Amount:    order.Total,
		Method:    "mock_card",
		CreatedAt: order.CreatedAt,
	}
	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		// The order is already persisted; losing the mock payment record
		// is tolerated the same way the client app tolerated storage
		// failures: log and move on.
		s.logger.WarnContext(ctx, "Failed to record transaction",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	s.cart.Clear(ctx, userID)
	s.metrics.OrdersCreatedTotal.Inc()
	s.logger.InfoContext(ctx, "Order placed",
		slog.String("order_id", order.ID),
		slog.String("restaurant_id", order.RestaurantID),
		slog.Int64("total", order.Total),
	)
	return &order, nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context) ([]types.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID string) (*types.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %q: %w", orderID, api.ErrNotFound)
}

func (s *OrderServiceImpl) AdvanceStatus(ctx context.Context, orderID string, status types.OrderStatus) (*types.Order, error) {
	if !status.Valid() {
		return nil, api.NewValidationError("Unknown order status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !orders[i].Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("cannot move order from %q to %q: %w",
				orders[i].Status, status, ErrInvalidTransition)
		}
		applyStatusTimestamps(&orders[i], status)
		orders[i].Status = status
		if err := s.repo.SaveOrders(ctx, orders); err != nil {
			return nil, err
		}
		s.metrics.OrderStatusAdvancesTotal.WithLabelValues(string(status)).Inc()
		o := orders[i]
		return &o, nil
	}
	return nil, fmt.Errorf("order %q: %w", orderID, api.ErrNotFound)
}

func (s *OrderServiceImpl) SeedMockOrders(ctx context.Context, count int, status types.OrderStatus) ([]types.Order, error) {
	if count <= 0 || count > 100 {
		return nil, api.NewValidationError("Count must be between 1 and 100")
	}
	if !status.Valid() {
		return nil, api.NewValidationError("Unknown order status")
	}

	generated := GenerateMockOrders(count, status)

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, generated...)
	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return nil, err
	}
	s.metrics.OrdersCreatedTotal.Add(float64(count))
	return generated, nil
}

func (s *OrderServiceImpl) ListTransactions(ctx context.Context) ([]types.Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// applyStatusTimestamps fills the optional fields that become meaningful
// at the moment an order reaches the target status.
func applyStatusTimestamps(o *types.Order, status types.OrderStatus) {
	now := time.Now().UTC()
	switch status {
	case types.StatusProcessing:
		if o.AcceptedAt == nil {
			o.AcceptedAt = &now
		}
	case types.StatusCompleted:
		if o.AcceptedAt == nil {
			o.AcceptedAt = &now
		}
		o.CompletedAt = &now
	}
}
