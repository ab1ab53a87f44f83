package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodie-express/foodie-server/app/observability/metrics"
	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ ChatService = (*ChatServiceImpl)(nil)

type ChatService interface {
	// SendMessage appends the user message to the restaurant's session,
	// generates the automated reply and appends that too. Both messages
	// are persisted together.
	SendMessage(ctx context.Context, restaurantID, text, lastOrderID string) (*types.ChatSession, error)
	GetSession(ctx context.Context, restaurantID string) (*types.ChatSession, error)
	ListSessions(ctx context.Context) ([]types.ChatSession, error)
}

type ChatServiceImpl struct {
	logger  *slog.Logger
	repo    ChatRepo
	catalog catalog.CatalogService
	metrics *metrics.AppMetrics

	mu sync.Mutex
}

func NewChatService(repo ChatRepo, catalogService catalog.CatalogService, logger *slog.Logger) *ChatServiceImpl {
	return &ChatServiceImpl{
		logger:  logger,
		repo:    repo,
		catalog: catalogService,
		metrics: metrics.Get(),
	}
}

func (s *ChatServiceImpl) SendMessage(ctx context.Context, restaurantID, text, lastOrderID string) (*types.ChatSession, error) {
	if text == "" {
		return nil, api.NewValidationError("Message text must not be empty")
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	session, ok := sessions[restaurantID]
	if !ok {
		session = types.ChatSession{
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
		}
	}

	now := time.Now().UTC()
	userMsg := types.ChatMessage{
		ID:        uuid.NewString(),
		From:      types.SenderUser,
		Text:      text,
		Timestamp: now,
	}
	session.Messages = append(session.Messages, userMsg)

	reply := GenerateAIResponse(text, ResponseContext{
		RestaurantName: restaurant.Name,
		LastOrderID:    lastOrderID,
	})

	// Escalation looks at the trailing window including the message just
	// appended. Once set, the flag never clears for the session.
	if !session.Escalated && ShouldEscalateToHuman(lastMessageTexts(session.Messages, types.SenderUser)) {
		session.Escalated = true
		s.metrics.ChatEscalationsTotal.Inc()
		s.logger.InfoContext(ctx, "Chat escalated to human support",
			slog.String("restaurant_id", restaurantID),
			slog.String("issue_type", string(DetectIssueType(text))),
		)
	}

	sender := types.SenderBot
	if session.Escalated {
		sender = types.SenderRestaurant
	}
	botMsg := types.ChatMessage{
		ID:           uuid.NewString(),
		From:         sender,
		Text:         reply.Text,
		Timestamp:    now.Add(time.Millisecond),
		QuickReplies: reply.QuickReplies,
	}
	session.Messages = append(session.Messages, botMsg)
	session.LastMessageAt = botMsg.Timestamp

	sessions[restaurantID] = session
	if err := s.repo.SaveSessions(ctx, sessions); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.metrics.ChatRepliesTotal.WithLabelValues(reply.Rule).Inc()
	return &session, nil
}

func (s *ChatServiceImpl) GetSession(ctx context.Context, restaurantID string) (*types.ChatSession, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	session, ok := sessions[restaurantID]
	if !ok {
		return nil, fmt.Errorf("chat session %q: %w", restaurantID, api.ErrNotFound)
	}
	return &session, nil
}

// ListSessions returns all sessions sorted by recency, newest first.
func (s *ChatServiceImpl) ListSessions(ctx context.Context) ([]types.ChatSession, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.ChatSession, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, session)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

// lastMessageTexts collects the texts of messages from the given sender,
// oldest first.
func lastMessageTexts(messages []types.ChatMessage, from types.MessageSender) []string {
	var texts []string
	for _, m := range messages {
		if m.From == from {
			texts = append(texts, m.Text)
		}
	}
	return texts
}
