package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foodie-express/foodie-server/internal/kv"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ ChatRepo = (*KVChatRepo)(nil)

// ChatRepo persists every chat session in one JSON object blob keyed by
// restaurant id. Whole-blob read-modify-write, same as the other stores.
type ChatRepo interface {
	ListSessions(ctx context.Context) (map[string]types.ChatSession, error)
	SaveSessions(ctx context.Context, sessions map[string]types.ChatSession) error
}

type KVChatRepo struct {
	logger *slog.Logger
	store  kv.Store
}

func NewKVChatRepo(store kv.Store, logger *slog.Logger) *KVChatRepo {
	return &KVChatRepo{
		logger: logger,
		store:  store,
	}
}

func (r *KVChatRepo) ListSessions(ctx context.Context) (map[string]types.ChatSession, error) {
	raw, err := r.store.Get(ctx, kv.KeyChats)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return map[string]types.ChatSession{}, nil
		}
		return nil, fmt.Errorf("list chat sessions: %w", err)
	}
	var sessions map[string]types.ChatSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("list chat sessions: decode failed: %w", err)
	}
	if sessions == nil {
		sessions = map[string]types.ChatSession{}
	}
	return sessions, nil
}

func (r *KVChatRepo) SaveSessions(ctx context.Context, sessions map[string]types.ChatSession) error {
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("save chat sessions: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyChats, raw); err != nil {
		return fmt.Errorf("save chat sessions: %w", err)
	}
	return nil
}
