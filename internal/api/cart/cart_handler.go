package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/api/auth"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
)

type CartHandler struct {
	service CartService
	catalog catalog.CatalogService
	logger  *slog.Logger
}

func NewCartHandler(service CartService, catalogService catalog.CatalogService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		catalog: catalogService,
		logger:  logger,
	}
}

// AddItem handles POST /cart/items. Resolves the menu item from the
// catalog so the cart only ever holds real catalog entries.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req AddItemRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.catalog.GetMenuItem(r.Context(), req.RestaurantID, req.ItemID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Menu item not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to resolve menu item")
		return
	}
	if !item.Available {
		api.ErrorResponse(w, r, http.StatusConflict, "Item is currently unavailable")
		return
	}

	h.service.AddItem(r.Context(), userID, *item, req.Customizations)
	h.writeCart(w, r, userID)
}

// UpdateQuantity handles PATCH /cart/items/{itemID}.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateQuantityRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	qty := req.Quantity
	if qty > maxQuantity {
		qty = maxQuantity
	}
	h.service.UpdateQuantity(r.Context(), userID, chi.URLParam(r, "itemID"), qty)
	h.writeCart(w, r, userID)
}

// RemoveItem handles DELETE /cart/items/{itemID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	h.service.RemoveItem(r.Context(), userID, chi.URLParam(r, "itemID"))
	h.writeCart(w, r, userID)
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	h.writeCart(w, r, userID)
}

// ClearCart handles DELETE /cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	h.service.Clear(r.Context(), userID)
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Cart cleared"})
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request, userID string) {
	api.WriteJSONResponse(w, r, http.StatusOK, CartResponse{
		Items: h.service.Items(r.Context(), userID),
		Total: h.service.Total(r.Context(), userID),
	})
}
