package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodie-express/foodie-server/internal/api"
)

type AuthHandler struct {
	service AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.service.Signup(r.Context(), req)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, AuthResponse{
		User:        *user,
		AccessToken: token,
		Message:     "Account created",
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, AuthResponse{
		User:        *user,
		AccessToken: token,
		Message:     "Login successful",
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "Logout failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to log out")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Logged out"})
}

// GetSession handles GET /auth/session: the trust-on-read restore path.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.RestoreSession(r.Context())
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.WriteJSONResponse(w, r, http.StatusOK, SessionResponse{Active: false})
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to restore session")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, SessionResponse{Active: true, User: user})
}

// GetProfile handles GET /profile.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "No profile saved yet")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, profile)
}

// writeAuthError maps service errors onto HTTP statuses; validation
// messages pass through verbatim.
func (h *AuthHandler) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *api.ValidationError
	switch {
	case errors.As(err, &vErr):
		api.ErrorResponse(w, r, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, api.ErrConflict):
		api.ErrorResponse(w, r, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		api.ErrorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, api.ErrForbidden):
		api.ErrorResponse(w, r, http.StatusForbidden, "This account is registered under a different role")
	default:
		h.logger.ErrorContext(r.Context(), "Auth operation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Something went wrong")
	}
}
