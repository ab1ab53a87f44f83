package types

import "time"

// OrderStatus is the closed order lifecycle enum. The modeled flows only
// ever move forward; see CanTransitionTo.
type OrderStatus string

const (
	StatusDraft          OrderStatus = "draft"
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

// statusRank orders the linear part of the lifecycle.
var statusRank = map[OrderStatus]int{
	StatusDraft:          0,
	StatusPending:        1,
	StatusProcessing:     2,
	StatusReady:          3,
	StatusOutForDelivery: 4,
	StatusCompleted:      5,
}

// Valid reports whether s is a member of the enum.
func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the move from s to next is allowed:
// strictly forward along draft→pending→processing→ready→out_for_delivery
// →completed, or from any non-terminal status to cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// OrderItem is a line item captured at checkout time; Price is the unit
// price at the moment the order was placed.
type OrderItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// Order is persisted as part of a single JSON array blob; it is mutated
// only by advancing Status. Optional timestamps are populated only when
// consistent with Status.
type Order struct {
	ID             string      `json:"id"`
	RestaurantID   string      `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name"`
	CustomerName   string      `json:"customer_name,omitempty"`
	Items          []OrderItem `json:"items"`
	Subtotal       int64       `json:"subtotal"`
	DeliveryFee    int64       `json:"delivery_fee"`
	Total          int64       `json:"total"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	AcceptedAt     *time.Time  `json:"accepted_at,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
	Rating         *int        `json:"rating,omitempty"`
	Tip            *int64      `json:"tip,omitempty"`
}

// Transaction records a mock payment; appended on checkout, never
// updated.
type Transaction struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
}
