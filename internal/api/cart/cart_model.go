package cart

import "github.com/foodie-express/foodie-server/internal/types"

// The cart UI never lets quantity exceed two digits; the handler clamps
// to this bound, the store itself does not.
const maxQuantity = 99

// AddItemRequest adds one unit of a catalog item to the cart.
type AddItemRequest struct {
	RestaurantID   string            `json:"restaurant_id"`
	ItemID         string            `json:"item_id"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// UpdateQuantityRequest sets the quantity of an existing entry.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart snapshot returned by every mutation.
type CartResponse struct {
	Items []types.CartItem `json:"items"`
	Total int64            `json:"total"`
}
