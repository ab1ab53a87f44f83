package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCtx = ResponseContext{
	RestaurantName: "Bella Napoli",
	LastOrderID:    "order-42",
}

func TestGenerateAIResponse_Greeting(t *testing.T) {
	resp := GenerateAIResponse("Hello", testCtx)

	assert.Equal(t, "greeting", resp.Rule)
	assert.Contains(t, resp.Text, "Bella Napoli")
	assert.NotEmpty(t, resp.SuggestedResponses)
}

func TestGenerateAIResponse_OrderStatus(t *testing.T) {
	resp := GenerateAIResponse("where is my order", testCtx)

	require.Equal(t, "order_status", resp.Rule)
	require.NotEmpty(t, resp.QuickReplies)

	var found bool
	for _, qr := range resp.QuickReplies {
		if qr.Action == "track_order" {
			found = true
			assert.Equal(t, "order-42", qr.OrderID)
		}
	}
	assert.True(t, found, "order-status branch must offer a track_order quick reply")
}

func TestGenerateAIResponse_FirstMatchWins(t *testing.T) {
	// Mentions both a status question and a delay complaint; the
	// status rule is earlier in the list and must win.
	resp := GenerateAIResponse("Where is my order? It is so late", testCtx)
	assert.Equal(t, "order_status", resp.Rule)
}

func TestGenerateAIResponse_CaseInsensitive(t *testing.T) {
	lower := GenerateAIResponse("i want a refund", testCtx)
	upper := GenerateAIResponse("I WANT A REFUND", testCtx)

	assert.Equal(t, "refund", lower.Rule)
	assert.Equal(t, lower.Rule, upper.Rule)
}

func TestGenerateAIResponse_Default(t *testing.T) {
	resp := GenerateAIResponse("xyzzy plugh", testCtx)

	assert.Equal(t, "default", resp.Rule)
	assert.NotEmpty(t, resp.QuickReplies)
}

func TestGenerateAIResponse_AllBranches(t *testing.T) {
	cases := map[string]string{
		"my food is taking forever":      "delay_complaint",
		"you forgot my fries":            "wrong_items",
		"I was charged twice":            "refund",
		"any discount codes?":            "promo",
		"what is the delivery time":      "delivery_time",
		"can you recommend something":    "menu",
		"the pizza arrived cold":         "quality",
		"is this gluten free":            "dietary",
		"thanks a lot":                   "gratitude",
	}
	for msg, want := range cases {
		resp := GenerateAIResponse(msg, testCtx)
		assert.Equal(t, want, resp.Rule, "message %q", msg)
		assert.NotEmpty(t, resp.Text)
	}
}

func TestShouldEscalateToHuman(t *testing.T) {
	assert.True(t, ShouldEscalateToHuman([]string{"I want to speak to a manager"}))
	assert.False(t, ShouldEscalateToHuman([]string{"Thanks, bye"}))

	// Keyword outside the last-3 window is ignored.
	msgs := []string{
		"get me your SUPERVISOR",
		"ok", "fine", "thanks",
	}
	assert.False(t, ShouldEscalateToHuman(msgs))

	// Case-insensitive inside the window.
	assert.True(t, ShouldEscalateToHuman([]string{"hi", "this is UNACCEPTABLE", "fix it"}))
}

func TestDetectIssueType(t *testing.T) {
	cases := map[string]IssueType{
		"you sent the wrong pizza":     IssueWrongOrder,
		"where is my order":            IssueOrderStatus,
		"the food was cold and soggy":  IssueQuality,
		"just saying hi":               IssueOther,
		// "wrong" outranks "track" when both appear.
		"tracking says delivered but items are missing": IssueWrongOrder,
	}
	for msg, want := range cases {
		assert.Equal(t, want, DetectIssueType(msg), "message %q", msg)
	}
}

func TestEscalationKeywordsAreLowerCase(t *testing.T) {
	// The matcher lower-cases input once; keywords must already be
	// lower-case or they can never match.
	for _, kw := range escalationKeywords {
		assert.Equal(t, strings.ToLower(kw), kw)
	}
}
