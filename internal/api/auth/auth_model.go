package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foodie-express/foodie-server/internal/types"
)

// ErrInvalidCredentials is deliberately identical for unknown email and
// wrong password so the response does not leak which one failed.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirm_password"`
	Role            types.Role `json:"role,omitempty"`
}

// LoginRequest represents the login request body. ExpectedRole, when
// set, must match the registered role of the account.
type LoginRequest struct {
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	ExpectedRole types.Role `json:"expected_role,omitempty"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	User        types.User `json:"user"`
	AccessToken string     `json:"access_token"`
	Message     string     `json:"message,omitempty"`
}

// SessionResponse describes the restored session, if any.
type SessionResponse struct {
	Active bool        `json:"active"`
	User   *types.User `json:"user,omitempty"`
}

// UpdateProfileRequest mutates the locally persisted profile blob.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Claims are the custom claims carried in the access token.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"eml"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}
