package chat

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodie-express/foodie-server/internal/api"
)

// SendMessageRequest is the body for posting a chat message.
type SendMessageRequest struct {
	Text        string `json:"text"`
	LastOrderID string `json:"last_order_id,omitempty"`
}

type ChatHandler struct {
	service ChatService
	logger  *slog.Logger
}

func NewChatHandler(service ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// SendMessage handles POST /chats/{restaurantID}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SendMessage(r.Context(), chi.URLParam(r, "restaurantID"), req.Text, req.LastOrderID)
	if err != nil {
		h.writeChatError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, session)
}

// GetSession handles GET /chats/{restaurantID}.
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "restaurantID"))
	if err != nil {
		h.writeChatError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, session)
}

// ListSessions handles GET /chats.
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list chat sessions", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load chat sessions")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (h *ChatHandler) writeChatError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *api.ValidationError
	switch {
	case errors.As(err, &ve):
		api.ErrorResponse(w, r, http.StatusBadRequest, ve.Message)
	case errors.Is(err, api.ErrNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Chat session not found")
	default:
		h.logger.ErrorContext(r.Context(), "Chat operation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Chat operation failed")
	}
}
