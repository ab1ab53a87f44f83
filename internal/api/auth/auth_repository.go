package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/kv"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ AuthRepo = (*KVAuthRepo)(nil)

// AuthRepo persists the user registry, the active session and the
// profile blob. Each is a whole JSON value under its fixed key.
type AuthRepo interface {
	ListUsers(ctx context.Context) ([]types.StoredUser, error)
	SaveUsers(ctx context.Context, users []types.StoredUser) error
	GetSession(ctx context.Context) (*types.User, error)
	SaveSession(ctx context.Context, user types.User) error
	ClearSession(ctx context.Context) error
	GetProfile(ctx context.Context) (*types.Profile, error)
	SaveProfile(ctx context.Context, profile types.Profile) error
}

type KVAuthRepo struct {
	logger *slog.Logger
	store  kv.Store
}

func NewKVAuthRepo(store kv.Store, logger *slog.Logger) *KVAuthRepo {
	return &KVAuthRepo{
		logger: logger,
		store:  store,
	}
}

// ListUsers returns the registry; a never-written key is an empty
// registry, not an error.
func (r *KVAuthRepo) ListUsers(ctx context.Context) ([]types.StoredUser, error) {
	raw, err := r.store.Get(ctx, kv.KeyUsers)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.StoredUser{}, nil
		}
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []types.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("list users: decode failed: %w", err)
	}
	return users, nil
}

func (r *KVAuthRepo) SaveUsers(ctx context.Context, users []types.StoredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("save users: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyUsers, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *KVAuthRepo) GetSession(ctx context.Context) (*types.User, error) {
	raw, err := r.store.Get(ctx, kv.KeyAuthSession)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var user types.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("get session: decode failed: %w", err)
	}
	return &user, nil
}

func (r *KVAuthRepo) SaveSession(ctx context.Context, user types.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save session: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyAuthSession, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *KVAuthRepo) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, kv.KeyAuthSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *KVAuthRepo) GetProfile(ctx context.Context) (*types.Profile, error) {
	raw, err := r.store.Get(ctx, kv.KeyProfile)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var profile types.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("get profile: decode failed: %w", err)
	}
	return &profile, nil
}

func (r *KVAuthRepo) SaveProfile(ctx context.Context, profile types.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("save profile: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyProfile, raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
