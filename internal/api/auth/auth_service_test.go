package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodie-express/foodie-server/config"
	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/types"
)

// MockAuthRepo is a mock implementation of the AuthRepo interface
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) ListUsers(ctx context.Context) ([]types.StoredUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.StoredUser), args.Error(1)
}

func (m *MockAuthRepo) SaveUsers(ctx context.Context, users []types.StoredUser) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockAuthRepo) GetSession(ctx context.Context) (*types.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockAuthRepo) SaveSession(ctx context.Context, user types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthRepo) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthRepo) GetProfile(ctx context.Context) (*types.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Profile), args.Error(1)
}

func (m *MockAuthRepo) SaveProfile(ctx context.Context, profile types.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:      "test-access-secret",
		AccessTokenTTL: 15 * time.Minute,
		Issuer:         "test-issuer",
		Audience:       "test-audience",
	}
}

func storedUser(email, password string, role types.Role) types.StoredUser {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return types.StoredUser{
		User: types.User{
			ID:    "user123",
			Email: email,
			Name:  "Test User",
			Role:  role,
		},
		PasswordHash: string(hash),
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{}, nil).Once()
		mockRepo.On("SaveUsers", ctx, mock.AnythingOfType("[]types.StoredUser")).Return(nil).Once()
		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("types.User")).Return(nil).Once()

		user, token, err := service.Signup(ctx, SignupRequest{
			Name:            "Ana",
			Email:           "Ana@Example.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, types.RoleUser, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("PasswordMismatchNeverTouchesRegistry", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		_, _, err := service.Signup(ctx, SignupRequest{
			Name:            "Ana",
			Email:           "ana@example.com",
			Password:        "secret1",
			ConfirmPassword: "different",
		})

		var vErr *api.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Passwords do not match", vErr.Message)
		mockRepo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "ListUsers", mock.Anything)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		_, _, err := service.Signup(ctx, SignupRequest{
			Name:            "Ana",
			Email:           "ana@example.com",
			Password:        "12345",
			ConfirmPassword: "12345",
		})

		var vErr *api.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Password must be at least 6 characters", vErr.Message)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		_, _, err := service.Signup(ctx, SignupRequest{
			Name:            "Ana",
			Email:           "not-an-email",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})

		var vErr *api.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		existing := storedUser("ana@example.com", "secret1", types.RoleUser)
		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{existing}, nil).Once()

		_, _, err := service.Signup(ctx, SignupRequest{
			Name:            "Other Ana",
			Email:           "ANA@example.com",
			Password:        "secret2",
			ConfirmPassword: "secret2",
		})

		assert.ErrorIs(t, err, api.ErrConflict)
		mockRepo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		existing := storedUser("ana@example.com", "secret1", types.RoleUser)
		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{existing}, nil).Once()
		mockRepo.On("SaveSession", ctx, existing.User).Return(nil).Once()

		user, token, err := service.Login(ctx, LoginRequest{
			Email:    "ana@example.com",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, existing.ID, user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("WrongPasswordNoSession", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		existing := storedUser("ana@example.com", "secret1", types.RoleUser)
		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{existing}, nil).Once()

		_, _, err := service.Login(ctx, LoginRequest{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})

		require.Error(t, err)
		assert.EqualError(t, err, "Invalid email or password")
		mockRepo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmailSameError", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{}, nil).Once()

		_, _, err := service.Login(ctx, LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.EqualError(t, err, "Invalid email or password")
	})

	t.Run("RoleMismatch", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		existing := storedUser("rider@example.com", "secret1", types.RoleRider)
		mockRepo.On("ListUsers", ctx).Return([]types.StoredUser{existing}, nil).Once()

		_, _, err := service.Login(ctx, LoginRequest{
			Email:        "rider@example.com",
			Password:     "secret1",
			ExpectedRole: types.RoleVendor,
		})

		assert.ErrorIs(t, err, api.ErrForbidden)
		mockRepo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

		_, _, err := service.Login(ctx, LoginRequest{Email: "", Password: ""})

		var vErr *api.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestLogoutClearsOnlySession(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

	mockRepo.On("ClearSession", ctx).Return(nil).Once()

	require.NoError(t, service.Logout(ctx))
	mockRepo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestRestoreSessionTrustOnRead(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), slog.Default())

	stored := &types.User{ID: "user123", Email: "ana@example.com", Role: types.RoleUser}
	mockRepo.On("GetSession", ctx).Return(stored, nil).Once()

	user, err := service.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
	// No credential checks on restore.
	mockRepo.AssertNotCalled(t, "ListUsers", mock.Anything)
}
