package types

import "time"

// Role is the multi-role split of the client app.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleRider  Role = "rider"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleVendor, RoleRider:
		return true
	}
	return false
}

// User is the session-facing user record; never carries the password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoredUser is the registry entry kept under the users blob. The hash
// stays server-side only.
type StoredUser struct {
	User
	PasswordHash string `json:"password_hash"`
}

// Profile is the locally persisted profile blob (display preferences,
// saved addresses) kept separate from the registry.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
