package types

// Restaurant is read-only reference data compiled into the binary.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Cuisine     string     `json:"cuisine"`
	Rating      float64    `json:"rating"`
	DeliveryFee int64      `json:"delivery_fee"`
	ImageURL    string     `json:"image_url,omitempty"`
	Menu        []MenuItem `json:"menu"`
}

// MenuItem is an immutable catalog entry. Price is in integer currency
// units (cents).
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          int64           `json:"price"`
	ImageURL       string          `json:"image,omitempty"`
	Category       string          `json:"category"`
	Available      bool            `json:"available"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// Customization is an optional choice group on a menu item, e.g.
// "Spice level" -> mild/medium/hot.
type Customization struct {
	Label   string   `json:"label"`
	Choices []string `json:"choices"`
}

// CartItem is a menu item selected into the cart. The cart holds at most
// one CartItem per MenuItem id; adds of the same item bump Quantity.
type CartItem struct {
	Item                   MenuItem          `json:"item"`
	Quantity               int               `json:"quantity"`
	SelectedCustomizations map[string]string `json:"selected_customizations,omitempty"`
}
