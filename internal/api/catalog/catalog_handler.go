package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodie-express/foodie-server/internal/api"
)

type CatalogHandler struct {
	service CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(service CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

// ListRestaurants handles GET /restaurants.
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Restaurants(r.Context()))
}

// GetRestaurant handles GET /restaurants/{restaurantID}.
func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "restaurantID")
	restaurant, err := h.service.GetRestaurant(r.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Restaurant not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load restaurant")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, restaurant)
}

// GetMenu handles GET /restaurants/{restaurantID}/menu.
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "restaurantID")
	restaurant, err := h.service.GetRestaurant(r.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Restaurant not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load menu")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, restaurant.Menu)
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Categories(r.Context()))
}
