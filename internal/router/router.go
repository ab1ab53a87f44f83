package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/foodie-express/foodie-server/internal/api/auth"
	"github.com/foodie-express/foodie-server/internal/api/cart"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/api/chat"
	"github.com/foodie-express/foodie-server/internal/api/orders"
)

// Config contains the handler dependencies the router mounts.
type Config struct {
	AuthHandler            *auth.AuthHandler
	CatalogHandler         *catalog.CatalogHandler
	CartHandler            *cart.CartHandler
	OrderHandler           *orders.OrderHandler
	ChatHandler            *chat.ChatHandler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter wires the route tree. Server-wide middleware (request ID,
// logger, recoverer) is applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Public routes: signing in and browsing the catalog need no
		// token.
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", cfg.AuthHandler.Signup)
			r.Post("/auth/login", cfg.AuthHandler.Login)
			r.Get("/auth/session", cfg.AuthHandler.GetSession)

			r.Get("/restaurants", cfg.CatalogHandler.ListRestaurants)
			r.Get("/restaurants/{restaurantID}", cfg.CatalogHandler.GetRestaurant)
			r.Get("/restaurants/{restaurantID}/menu", cfg.CatalogHandler.GetMenu)
			r.Get("/categories", cfg.CatalogHandler.ListCategories)
		})

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/auth/logout", cfg.AuthHandler.Logout)
			r.Get("/profile", cfg.AuthHandler.GetProfile)
			r.Put("/profile", cfg.AuthHandler.UpdateProfile)

			r.Get("/cart", cfg.CartHandler.GetCart)
			r.Post("/cart/items", cfg.CartHandler.AddItem)
			r.Patch("/cart/items/{itemID}", cfg.CartHandler.UpdateQuantity)
			r.Delete("/cart/items/{itemID}", cfg.CartHandler.RemoveItem)
			r.Delete("/cart", cfg.CartHandler.ClearCart)

			r.Post("/orders/checkout", cfg.OrderHandler.Checkout)
			r.Get("/orders", cfg.OrderHandler.ListOrders)
			r.Get("/orders/{orderID}", cfg.OrderHandler.GetOrder)
			r.Patch("/orders/{orderID}/status", cfg.OrderHandler.AdvanceStatus)
			r.Post("/orders/seed", cfg.OrderHandler.SeedMockOrders)
			r.Get("/transactions", cfg.OrderHandler.ListTransactions)

			r.Get("/chats", cfg.ChatHandler.ListSessions)
			r.Get("/chats/{restaurantID}", cfg.ChatHandler.GetSession)
			r.Post("/chats/{restaurantID}/messages", cfg.ChatHandler.SendMessage)
		})
	})

	return r
}
