package catalog

import (
	"math/rand"

	"github.com/foodie-express/foodie-server/internal/types"
)

var categories = []string{
	"Pizza", "Burgers", "Sushi", "Indian", "Desserts", "Healthy",
}

// restaurants is the compiled-in mock catalog. Prices are cents.
var restaurants = []types.Restaurant{
	{
		ID:          "rest-001",
		Name:        "Bella Napoli",
		Cuisine:     "Italian",
		Rating:      4.7,
		DeliveryFee: 299,
		ImageURL:    "https://images.foodie.example/bella-napoli.jpg",
		Menu: []types.MenuItem{
			{
				ID: "item-001", Name: "Margherita", Category: "Pizza",
				Description: "San Marzano tomatoes, fior di latte, basil",
				Price:       1250, Available: true,
				ImageURL: "https://images.foodie.example/margherita.jpg",
				Customizations: []types.Customization{
					{Label: "Size", Choices: []string{"Regular", "Large"}},
					{Label: "Crust", Choices: []string{"Classic", "Thin"}},
				},
			},
			{
				ID: "item-002", Name: "Diavola", Category: "Pizza",
				Description: "Spicy salami, chili oil, mozzarella",
				Price:       1450, Available: true,
			},
			{
				ID: "item-003", Name: "Tiramisu", Category: "Desserts",
				Description: "Espresso-soaked savoiardi, mascarpone",
				Price:       650, Available: true,
			},
			{
				ID: "item-004", Name: "Calzone", Category: "Pizza",
				Description: "Folded pizza with ricotta and ham",
				Price:       1350, Available: false,
			},
		},
	},
	{
		ID:          "rest-002",
		Name:        "Burger Barn",
		Cuisine:     "American",
		Rating:      4.4,
		DeliveryFee: 199,
		ImageURL:    "https://images.foodie.example/burger-barn.jpg",
		Menu: []types.MenuItem{
			{
				ID: "item-010", Name: "Classic Smash", Category: "Burgers",
				Description: "Double smashed patty, cheddar, pickles",
				Price:       950, Available: true,
				Customizations: []types.Customization{
					{Label: "Doneness", Choices: []string{"Medium", "Well done"}},
					{Label: "Extras", Choices: []string{"Bacon", "Fried egg", "None"}},
				},
			},
			{
				ID: "item-011", Name: "Crispy Chicken", Category: "Burgers",
				Description: "Buttermilk fried chicken, slaw, hot honey",
				Price:       1050, Available: true,
			},
			{
				ID: "item-012", Name: "Sweet Potato Fries", Category: "Healthy",
				Description: "With garlic aioli",
				Price:       450, Available: true,
			},
		},
	},
	{
		ID:          "rest-003",
		Name:        "Sakura Sushi",
		Cuisine:     "Japanese",
		Rating:      4.8,
		DeliveryFee: 399,
		ImageURL:    "https://images.foodie.example/sakura.jpg",
		Menu: []types.MenuItem{
			{
				ID: "item-020", Name: "Salmon Nigiri Set", Category: "Sushi",
				Description: "8 pieces, fresh Atlantic salmon",
				Price:       1600, Available: true,
			},
			{
				ID: "item-021", Name: "Dragon Roll", Category: "Sushi",
				Description: "Eel, avocado, tobiko",
				Price:       1400, Available: true,
			},
			{
				ID: "item-022", Name: "Miso Soup", Category: "Healthy",
				Description: "Tofu, wakame, scallion",
				Price:       350, Available: true,
			},
		},
	},
	{
		ID:          "rest-004",
		Name:        "Spice Route",
		Cuisine:     "Indian",
		Rating:      4.6,
		DeliveryFee: 249,
		ImageURL:    "https://images.foodie.example/spice-route.jpg",
		Menu: []types.MenuItem{
			{
				ID: "item-030", Name: "Butter Chicken", Category: "Indian",
				Description: "Tandoori chicken in tomato-fenugreek gravy",
				Price:       1300, Available: true,
				Customizations: []types.Customization{
					{Label: "Spice level", Choices: []string{"Mild", "Medium", "Hot"}},
				},
			},
			{
				ID: "item-031", Name: "Palak Paneer", Category: "Indian",
				Description: "Spinach, fresh paneer, garam masala",
				Price:       1150, Available: true,
			},
			{
				ID: "item-032", Name: "Garlic Naan", Category: "Indian",
				Description: "Clay-oven flatbread",
				Price:       300, Available: true,
			},
		},
	},
}

var cuisines = []string{
	"Italian", "American", "Japanese", "Indian", "Thai", "Mexican", "Greek",
}

var orderStages = []string{
	"being prepared in the kitchen",
	"almost ready",
	"waiting for a rider",
	"on its way to you",
	"just around the corner",
}

// RandomCuisine returns a cuisine name for cosmetic text variation.
func RandomCuisine() string {
	return cuisines[rand.Intn(len(cuisines))]
}

// RandomOrderStage returns a human order-progress phrase. Used only to
// decorate chat responses, never for control flow.
func RandomOrderStage() string {
	return orderStages[rand.Intn(len(orderStages))]
}
