package orders

import "github.com/foodie-express/foodie-server/internal/types"

// CheckoutRequest names the restaurant the cart contents belong to.
type CheckoutRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

// AdvanceStatusRequest carries the target status for an order.
type AdvanceStatusRequest struct {
	Status types.OrderStatus `json:"status"`
}

// SeedRequest asks for count generated demo orders in the given status.
type SeedRequest struct {
	Count  int               `json:"count"`
	Status types.OrderStatus `json:"status"`
}

// OrderListResponse wraps the persisted order list.
type OrderListResponse struct {
	Orders []types.Order `json:"orders"`
}

// TransactionListResponse wraps the persisted payment trail.
type TransactionListResponse struct {
	Transactions []types.Transaction `json:"transactions"`
}
