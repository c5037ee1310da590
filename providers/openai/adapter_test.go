package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymesh/llmgateway/protocol"
)

func TestNewAdapterCapability(t *testing.T) {
	a := New()

	assert.Equal(t, "openai", a.Name())
	assert.True(t, a.Capability().Roles.System)
	assert.True(t, a.Capability().Features.FunctionCalling)
	assert.True(t, a.Capability().Features.JSONMode)
}

func TestHeadersCarryBearerToken(t *testing.T) {
	a := New()

	headers := a.Headers("sk-test")
	assert.Equal(t, "Bearer sk-test", headers["Authorization"])
}

func TestEncodeRequestIsIdentityWireShape(t *testing.T) {
	a := New()

	req := &protocol.Request{
		Model:    "gpt-4o",
		Messages: []protocol.Message{protocol.NewTextMessage(protocol.RoleUser, "hi")},
	}

	body, err := a.EncodeRequest(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "gpt-4o", decoded["model"])

	messages, ok := decoded["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	first := messages[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "hi", first["content"])
}

func TestDecodeResponseRoundTrips(t *testing.T) {
	a := New()

	body := json.RawMessage(`{
		"id": "chatcmpl-1",
		"model": "gpt-4o",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 5, "completion_tokens": 2, "total_tokens": 7}
	}`)

	resp, err := a.DecodeResponse(body)
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-1", resp.ID)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "hello", *resp.Choices[0].Message.Text)
	assert.Equal(t, protocol.FinishReasonStop, resp.Choices[0].FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, int64(7), resp.Usage.TotalTokens)
}
