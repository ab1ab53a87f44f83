package orders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/foodie-express/foodie-server/internal/types"
)

var mockCustomers = []string{
	"Alex Morgan", "Priya Shah", "Daniel Kim", "Fatima Hassan",
	"Lucas Oliveira", "Emma Novak", "Tunde Adebayo", "Mei Lin",
}

var mockVendors = []struct {
	id   string
	name string
}{
	{"rest-001", "Bella Napoli"},
	{"rest-002", "Burger Barn"},
	{"rest-003", "Sakura Sushi"},
	{"rest-004", "Spice Route"},
}

var mockDishes = []struct {
	name  string
	price int64
}{
	{"Margherita", 1250},
	{"Diavola", 1450},
	{"Classic Smash", 950},
	{"Crispy Chicken", 1050},
	{"Salmon Nigiri Set", 1600},
	{"Dragon Roll", 1400},
	{"Butter Chicken", 1300},
	{"Palak Paneer", 1150},
	{"Garlic Naan", 300},
	{"Tiramisu", 650},
}

// GenerateMockOrder produces a self-consistent demo order in the
// requested status. Optional timestamps, rating and tip are populated
// only when consistent with that status: an accepted-or-later order has
// AcceptedAt, only a completed order has CompletedAt, a rating of 4 or
// 5 and possibly a tip. Statuses are written directly, bypassing the
// transition guard, since generated orders start life mid-flow.
func GenerateMockOrder(status types.OrderStatus) types.Order {
	vendor := mockVendors[rand.Intn(len(mockVendors))]

	itemCount := 1 + rand.Intn(3)
	items := make([]types.OrderItem, 0, itemCount)
	var subtotal int64
	for i := 0; i < itemCount; i++ {
		dish := mockDishes[rand.Intn(len(mockDishes))]
		qty := 1 + rand.Intn(3)
		items = append(items, types.OrderItem{
			ID:    fmt.Sprintf("line-%d", i+1),
			Name:  dish.name,
			Qty:   qty,
			Price: dish.price,
		})
		subtotal += dish.price * int64(qty)
	}

	deliveryFee := int64(150 + rand.Intn(5)*50)
	createdAt := time.Now().UTC().Add(-time.Duration(rand.Intn(120)) * time.Minute)

	order := types.Order{
		ID:             uuid.NewString(),
		RestaurantID:   vendor.id,
		RestaurantName: vendor.name,
		CustomerName:   mockCustomers[rand.Intn(len(mockCustomers))],
		Items:          items,
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		Total:          subtotal + deliveryFee,
		Status:         status,
		CreatedAt:      createdAt,
	}

	accepted := createdAt.Add(time.Duration(2+rand.Intn(5)) * time.Minute)
	switch status {
	case types.StatusProcessing, types.StatusReady, types.StatusOutForDelivery:
		order.AcceptedAt = &accepted
	case types.StatusCompleted:
		order.AcceptedAt = &accepted
		completed := accepted.Add(time.Duration(15+rand.Intn(40)) * time.Minute)
		order.CompletedAt = &completed
		rating := 4 + rand.Intn(2)
		order.Rating = &rating
		if rand.Intn(2) == 0 {
			tip := int64(100 + rand.Intn(8)*50)
			order.Tip = &tip
		}
	}

	return order
}

// GenerateMockOrders maps GenerateMockOrder over a count.
func GenerateMockOrders(count int, status types.OrderStatus) []types.Order {
	out := make([]types.Order, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, GenerateMockOrder(status))
	}
	return out
}
