package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodie-express/foodie-server/app/observability/metrics"
	"github.com/foodie-express/foodie-server/config"
	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// AuthService is the mock session store: a locally persisted user
// registry with signup/login/logout and trust-on-read session
// restoration.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*types.User, string, error)
	Login(ctx context.Context, req LoginRequest) (*types.User, string, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (*types.User, error)
	GetProfile(ctx context.Context) (*types.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*types.Profile, error)
}

type AuthServiceImpl struct {
	logger  *slog.Logger
	repo    AuthRepo
	jwtCfg  config.JWTConfig
	metrics *metrics.AppMetrics
}

func NewAuthService(repo AuthRepo, jwtCfg config.JWTConfig, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger:  logger,
		repo:    repo,
		jwtCfg:  jwtCfg,
		metrics: metrics.Get(),
	}
}

// Signup validates the request, rejects duplicate emails, stores the new
// user and establishes the session. All validation happens before any
// registry mutation.
func (s *AuthServiceImpl) Signup(ctx context.Context, req SignupRequest) (*types.User, string, error) {
	if err := validateSignup(req); err != nil {
		s.metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return nil, "", err
	}

	role := req.Role
	if role == "" {
		role = types.RoleUser
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	email := normalizeEmail(req.Email)
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			s.metrics.AuthAttemptsTotal.WithLabelValues("signup", "duplicate").Inc()
			return nil, "", fmt.Errorf("an account with this email already exists: %w", api.ErrConflict)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("signup: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := types.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	users = append(users, types.StoredUser{User: user, PasswordHash: string(hash)})
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return nil, "", fmt.Errorf("signup: %w", err)
	}
	if err := s.repo.SaveSession(ctx, user); err != nil {
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	s.metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	s.logger.InfoContext(ctx, "User registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return &user, token, nil
}

// Login checks credentials against the registry. Unknown email and wrong
// password produce the same error and never touch the session key.
func (s *AuthServiceImpl) Login(ctx context.Context, req LoginRequest) (*types.User, string, error) {
	if req.Email == "" || req.Password == "" {
		s.metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return nil, "", api.NewValidationError("Email and password are required")
	}
	if !strings.Contains(req.Email, "@") {
		s.metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return nil, "", api.NewValidationError("Please enter a valid email address")
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	email := normalizeEmail(req.Email)
	var found *types.StoredUser
	for i := range users {
		if normalizeEmail(users[i].Email) == email {
			found = &users[i]
			break
		}
	}
	if found == nil {
		s.metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return nil, "", ErrInvalidCredentials
	}

	if req.ExpectedRole != "" && req.ExpectedRole != found.Role {
		s.metrics.AuthAttemptsTotal.WithLabelValues("login", "role_mismatch").Inc()
		return nil, "", fmt.Errorf("this account is registered as %q, not %q: %w",
			found.Role, req.ExpectedRole, api.ErrForbidden)
	}

	if err := s.repo.SaveSession(ctx, found.User); err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	token, err := s.generateAccessToken(found.User)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	s.metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	user := found.User
	return &user, token, nil
}

// Logout clears the session key; the registry is untouched.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

// RestoreSession reads the persisted session without re-validating
// credentials (trust-on-read).
func (s *AuthServiceImpl) RestoreSession(ctx context.Context) (*types.User, error) {
	return s.repo.GetSession(ctx)
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context) (*types.Profile, error) {
	return s.repo.GetProfile(ctx)
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*types.Profile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		if err != api.ErrNotFound {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		profile = &types.Profile{UserID: userID}
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

func (s *AuthServiceImpl) generateAccessToken(user types.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func validateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return api.NewValidationError("All fields are required")
	}
	if !strings.Contains(req.Email, "@") {
		return api.NewValidationError("Please enter a valid email address")
	}
	if len(req.Password) < 6 {
		return api.NewValidationError("Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return api.NewValidationError("Passwords do not match")
	}
	if req.Role != "" && !types.ValidRole(req.Role) {
		return api.NewValidationError("Unknown account role")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
