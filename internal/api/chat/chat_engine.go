package chat

import (
	"fmt"
	"strings"

	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/types"
)

// ResponseContext carries the conversation facts the canned replies can
// reference.
type ResponseContext struct {
	RestaurantName string
	LastOrderID    string
}

// BotResponse is what the rule engine produces for one user message.
type BotResponse struct {
	Rule               string
	Text               string
	QuickReplies       []types.QuickReplyOption
	SuggestedResponses []string
}

// rule pairs a keyword predicate with a response builder. Rules are
// evaluated in order; the first match wins.
type rule struct {
	name    string
	matches func(msg string) bool
	respond func(ctx ResponseContext) BotResponse
}

func containsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

var rules = []rule{
	{
		name: "order_status",
		matches: func(msg string) bool {
			return containsAny(msg, "where is my order", "order status", "track", "how long", "eta", "when will")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "order_status",
				Text: fmt.Sprintf("Good news! Your order is %s. You can follow it live on the tracking screen.", catalog.RandomOrderStage()),
				QuickReplies: []types.QuickReplyOption{
					{ID: "qr-track", Label: "Track my order", Action: "track_order", OrderID: ctx.LastOrderID},
					{ID: "qr-contact", Label: "Contact restaurant", Action: "contact_restaurant"},
				},
			}
		},
	},
	{
		name: "delay_complaint",
		matches: func(msg string) bool {
			return containsAny(msg, "late", "slow", "taking forever", "delayed", "still waiting")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "delay_complaint",
				Text: "I'm really sorry about the wait. I've flagged your order as a priority with the kitchen. Would you like an update or a small voucher for the inconvenience?",
				QuickReplies: []types.QuickReplyOption{
					{ID: "qr-update", Label: "Get an update", Action: "track_order", OrderID: ctx.LastOrderID},
					{ID: "qr-voucher", Label: "Claim voucher", Action: "claim_voucher"},
				},
			}
		},
	},
	{
		name: "wrong_items",
		matches: func(msg string) bool {
			return containsAny(msg, "wrong", "missing", "incorrect", "forgot", "not what i ordered")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "wrong_items",
				Text: "That shouldn't have happened. Please tell me which items were wrong or missing and I'll sort it out right away.",
				QuickReplies: []types.QuickReplyOption{
					{ID: "qr-report", Label: "Report missing items", Action: "report_issue", OrderID: ctx.LastOrderID},
					{ID: "qr-refund", Label: "Request a refund", Action: "request_refund"},
				},
			}
		},
	},
	{
		name: "refund",
		matches: func(msg string) bool {
			return containsAny(msg, "refund", "money back", "charge", "charged twice", "cancel")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "refund",
				Text: "I can help with refunds. Approved refunds are returned to your original payment method within 3-5 business days.",
				QuickReplies: []types.QuickReplyOption{
					{ID: "qr-refund", Label: "Start refund request", Action: "request_refund", OrderID: ctx.LastOrderID},
				},
			}
		},
	},
	{
		name: "promo",
		matches: func(msg string) bool {
			return containsAny(msg, "promo", "discount", "coupon", "voucher", "deal", "offer")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "promo",
				Text: "Check the Offers tab for current deals. New customers get 20% off their first order with code WELCOME20.",
				SuggestedResponses: []string{
					"Show me today's deals",
					"How do I apply a code?",
				},
			}
		},
	},
	{
		name: "delivery_time",
		matches: func(msg string) bool {
			return containsAny(msg, "delivery time", "how fast", "deliver to", "delivery fee", "opening hours", "open")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "delivery_time",
				Text: fmt.Sprintf("%s typically delivers in 25-40 minutes depending on distance and time of day. Delivery fees are shown at checkout.", ctx.RestaurantName),
			}
		},
	},
	{
		name: "menu",
		matches: func(msg string) bool {
			return containsAny(msg, "menu", "what do you have", "recommend", "popular", "best seller", "vegetarian options")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "menu",
				Text: fmt.Sprintf("You can browse the full %s menu right in the app. Our %s dishes are especially popular right now.", ctx.RestaurantName, strings.ToLower(catalog.RandomCuisine())),
				SuggestedResponses: []string{
					"What's popular?",
					"Any vegetarian dishes?",
				},
			}
		},
	},
	{
		name: "quality",
		matches: func(msg string) bool {
			return containsAny(msg, "cold", "soggy", "stale", "burnt", "undercooked", "bad quality", "terrible", "awful")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "quality",
				Text: "I'm very sorry the food didn't meet expectations. I've shared your feedback with the kitchen. Would you like a replacement or a refund?",
				QuickReplies: []types.QuickReplyOption{
					{ID: "qr-replace", Label: "Send a replacement", Action: "request_replacement", OrderID: ctx.LastOrderID},
					{ID: "qr-refund", Label: "Request a refund", Action: "request_refund"},
				},
			}
		},
	},
	{
		name: "dietary",
		matches: func(msg string) bool {
			return containsAny(msg, "allerg", "gluten", "vegan", "vegetarian", "halal", "kosher", "nut", "dairy", "lactose")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "dietary",
				Text: "Dietary labels are listed on each menu item. For severe allergies please also add a note at checkout so the kitchen is alerted directly.",
			}
		},
	},
	{
		name: "greeting",
		matches: func(msg string) bool {
			return containsAny(msg, "hello", "hi", "hey", "good morning", "good evening")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "greeting",
				Text: fmt.Sprintf("Hi there! Welcome to %s. How can I help you today?", ctx.RestaurantName),
				SuggestedResponses: []string{
					"Where is my order?",
					"Show me the menu",
					"I have a problem with my order",
				},
			}
		},
	},
	{
		name: "gratitude",
		matches: func(msg string) bool {
			return containsAny(msg, "thank", "thanks", "great", "awesome", "perfect")
		},
		respond: func(ctx ResponseContext) BotResponse {
			return BotResponse{
				Rule: "gratitude",
				Text: "You're very welcome! Enjoy your meal and let me know if there's anything else.",
			}
		},
	},
}

// GenerateAIResponse runs the ordered rule list over the lower-cased
// message and returns the first matching canned reply, or the default
// reply when nothing matches.
func GenerateAIResponse(userMessage string, ctx ResponseContext) BotResponse {
	msg := strings.ToLower(userMessage)
	for _, r := range rules {
		if r.matches(msg) {
			return r.respond(ctx)
		}
	}
	return BotResponse{
		Rule: "default",
		Text: "I'm here to help! Ask me anything about your order, the menu, or delivery.",
		QuickReplies: []types.QuickReplyOption{
			{ID: "qr-track", Label: "Track my order", Action: "track_order", OrderID: ctx.LastOrderID},
			{ID: "qr-menu", Label: "Browse the menu", Action: "open_menu"},
			{ID: "qr-help", Label: "Talk to support", Action: "open_support"},
		},
	}
}

// escalationKeywords trigger a hand-off to a human agent.
var escalationKeywords = []string{
	"manager", "escalate", "supervisor", "owner",
	"complaint", "serious", "unacceptable", "lawyer",
}

// ShouldEscalateToHuman reports whether any escalation keyword appears
// in the last three messages, case-insensitive.
func ShouldEscalateToHuman(messages []string) bool {
	start := 0
	if len(messages) > 3 {
		start = len(messages) - 3
	}
	joined := strings.ToLower(strings.Join(messages[start:], " "))
	return containsAny(joined, escalationKeywords...)
}

// IssueType labels a user message for support routing.
type IssueType string

const (
	IssueWrongOrder  IssueType = "wrong_order"
	IssueOrderStatus IssueType = "order_status"
	IssueQuality     IssueType = "quality"
	IssueOther       IssueType = "other"
)

// DetectIssueType classifies a message in fixed priority order, first
// match wins.
func DetectIssueType(message string) IssueType {
	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, "wrong", "missing", "incorrect", "forgot"):
		return IssueWrongOrder
	case containsAny(msg, "where", "status", "track", "late", "eta"):
		return IssueOrderStatus
	case containsAny(msg, "cold", "soggy", "stale", "burnt", "quality"):
		return IssueQuality
	default:
		return IssueOther
	}
}
