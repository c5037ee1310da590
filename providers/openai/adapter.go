// Package openai implements the equivalent reference adapter (spec §4.4):
// the canonical schema is already OpenAI's wire shape, so this adapter's
// transforms are identity.
package openai

import (
	"encoding/json"
	"fmt"

	"github.com/relaymesh/llmgateway/capability"
	"github.com/relaymesh/llmgateway/protocol"
	"github.com/relaymesh/llmgateway/providers"
)

// Adapter is the OpenAI-equivalent provider adapter.
type Adapter struct {
	cap capability.Capability
}

// New builds an OpenAI adapter with a full-featured capability set, used
// as a source capability baseline and as a fallback target.
func New() *Adapter {
	c := capability.New()
	c.Roles.System = true
	c.Roles.Function = true
	c.Roles.Tool = true
	c.Features = capability.ModelFeatures{
		FunctionCalling:   true,
		JSONMode:          true,
		Streaming:         true,
		LogProbs:          true,
		MultipleResponses: true,
		StopSequences:     true,
		Seed:              true,
		Vision:            true,
	}
	c.Parameters.Temperature.Supported = true
	c.Parameters.TopP.Supported = true
	c.Parameters.PresencePenalty.Supported = true
	c.Parameters.FrequencyPenalty.Supported = true
	c.Modalities.Input[capability.ModalityImage] = true
	c.Constraints.Messages.AllowConsecutiveSameRole = true

	window := int64(128000)
	c.Constraints.Tokens.MaxContextWindow = &window

	return &Adapter{cap: c}
}

func (a *Adapter) Name() string { return "openai" }

func (a *Adapter) Capability() capability.Capability { return a.cap }

func (a *Adapter) BaseURL() string { return "https://api.openai.com" }

func (a *Adapter) Endpoint(kind providers.CallKind) string {
	switch kind {
	case providers.CallKindChat:
		return "/v1/chat/completions"
	default:
		return "/v1/chat/completions"
	}
}

func (a *Adapter) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + apiKey,
		"Content-Type":  "application/json",
	}
}

// FinalizeRequest is a no-op: the canonical schema is already this
// provider's wire shape.
func (a *Adapter) FinalizeRequest(req *protocol.Request) *protocol.Request {
	return req
}

func (a *Adapter) EncodeRequest(req *protocol.Request) (json.RawMessage, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: encode request: %w", err)
	}

	return data, nil
}

func (a *Adapter) DecodeResponse(body json.RawMessage) (*protocol.Response, error) {
	var resp protocol.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}

	return &resp, nil
}
