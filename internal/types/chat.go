package types

import "time"

// MessageSender identifies who authored a chat message.
type MessageSender string

const (
	SenderUser       MessageSender = "user"
	SenderBot        MessageSender = "bot"
	SenderRestaurant MessageSender = "restaurant"
)

// QuickReplyOption is a pre-defined button offered alongside a bot
// message so the user can respond without typing.
type QuickReplyOption struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Action  string `json:"action"`
	OrderID string `json:"order_id,omitempty"`
}

type ChatMessage struct {
	ID           string             `json:"id"`
	From         MessageSender      `json:"from"`
	Text         string             `json:"text"`
	Timestamp    time.Time          `json:"timestamp"`
	QuickReplies []QuickReplyOption `json:"quick_reply_options,omitempty"`
}

// ChatSession groups an append-only, time-ordered message sequence with
// one restaurant. LastMessageAt always equals the timestamp of the last
// message.
type ChatSession struct {
	RestaurantID   string        `json:"restaurant_id"`
	RestaurantName string        `json:"restaurant_name"`
	Messages       []ChatMessage `json:"messages"`
	Escalated      bool          `json:"escalated"`
	LastMessageAt  time.Time     `json:"last_message_at"`
}
