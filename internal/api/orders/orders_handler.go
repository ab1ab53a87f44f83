package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/api/auth"
	"github.com/foodie-express/foodie-server/internal/types"
)

type OrderHandler struct {
	service OrderService
	logger  *slog.Logger
}

func NewOrderHandler(service OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// Checkout handles POST /orders/checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CheckoutRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.RestaurantID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "restaurant_id is required")
		return
	}

	order, err := h.service.Checkout(r.Context(), userID, req.RestaurantID)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, order)
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list orders", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load orders")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, OrderListResponse{Orders: orders})
}

// GetOrder handles GET /orders/{orderID}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, order)
}

// AdvanceStatus handles PATCH /orders/{orderID}/status. Restricted to
// the vendor role: customers track orders, they do not move them.
func (h *OrderHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireVendor(w, r) {
		return
	}

	var req AdvanceStatusRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.AdvanceStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, order)
}

// SeedMockOrders handles POST /orders/seed, the vendor dashboard's
// demo-data refill.
func (h *OrderHandler) SeedMockOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireVendor(w, r) {
		return
	}

	var req SeedRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.service.SeedMockOrders(r.Context(), req.Count, req.Status)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, OrderListResponse{Orders: orders})
}

// ListTransactions handles GET /transactions.
func (h *OrderHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.ListTransactions(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list transactions", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, TransactionListResponse{Transactions: txs})
}

func (h *OrderHandler) requireVendor(w http.ResponseWriter, r *http.Request) bool {
	role, ok := auth.GetUserRoleFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return false
	}
	if role != string(types.RoleVendor) {
		api.ErrorResponse(w, r, http.StatusForbidden, "Vendor role required")
		return false
	}
	return true
}

func (h *OrderHandler) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *api.ValidationError
	switch {
	case errors.As(err, &ve):
		api.ErrorResponse(w, r, http.StatusBadRequest, ve.Message)
	case errors.Is(err, api.ErrNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		api.ErrorResponse(w, r, http.StatusConflict, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Order operation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Order operation failed")
	}
}
