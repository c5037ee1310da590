package protocol

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ptr is a small generic helper for building pointer fields inline.
func ptr[T any](v T) *T { return &v }

func TestMessageRoundTrip(t *testing.T) {
	cases := []Message{
		NewTextMessage(RoleUser, "hello there"),
		NewPartsMessage(RoleUser, ContentPart{Type: ContentPartText, Text: "hi"}, ContentPart{
			Type:  ContentPartImage,
			Image: &MediaRef{URL: "https://example.invalid/cat.png", MimeType: "image/png"},
		}),
		{
			Role:       RoleAssistant,
			Text:       ptr("calling a tool"),
			ToolCalls:  []ToolCall{{ID: "call_1", Type: "function", Function: FunctionCall{Name: "lookup", Arguments: `{"q":"weather"}`}}},
			ToolCallID: nil,
			Metadata:   map[string]any{"latency_ms": float64(42)},
		},
	}

	for i, original := range cases {
		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("case %d: marshal: %v", i, err)
		}

		var restored Message
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("case %d: unmarshal: %v", i, err)
		}

		if diff := cmp.Diff(original, restored); diff != "" {
			t.Errorf("case %d: round-trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRequestRoundTrip(t *testing.T) {
	original := Request{
		Model: "gpt-4",
		Messages: []Message{
			NewTextMessage(RoleSystem, "You are a helpful assistant"),
			NewTextMessage(RoleUser, "Hello!"),
		},
		Temperature:     ptr(0.7),
		MaxOutputTokens: ptr(int64(256)),
		Stop:            []string{"\n\n"},
		Tools: []Tool{{
			Type:     "function",
			Function: FunctionSpec{Name: "lookup", Parameters: json.RawMessage(`{"type":"object"}`)},
		}},
		ToolChoice: &ToolChoice{Mode: "auto"},
		Metadata:   map[string]any{"lossy": false},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Request
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// RequestID is deliberately not part of the wire shape (json:"-"), so it
	// is not expected to survive a JSON round trip.
	if diff := cmp.Diff(original, restored, cmpopts.IgnoreFields(Request{}, "RequestID")); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	original := Response{
		ID:      "chatcmpl-1",
		Object:  "chat.completion",
		Model:   "claude-3-opus",
		Choices: []Choice{{Index: 0, Message: NewTextMessage(RoleAssistant, "hi there"), FinishReason: FinishReasonStop}},
		Usage:   &Usage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Response
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := cmp.Diff(original, restored); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
