// Package anthropic implements the divergent reference adapter (spec
// §4.4): system content moves to a top-level field, messages must
// strictly alternate user/assistant, and the response/usage shapes use
// Anthropic's own vocabulary rather than the canonical one.
package anthropic

import (
	"encoding/json"

	"github.com/relaymesh/llmgateway/capability"
	"github.com/relaymesh/llmgateway/protocol"
	"github.com/relaymesh/llmgateway/providers"
)

// Adapter is the Anthropic Messages API provider adapter.
type Adapter struct {
	cap capability.Capability
}

// New builds an Anthropic adapter. System-role content is supported (via
// the wire's top-level "system" field, handled in EncodeRequest) so the
// transformation engine does not merge it away; function_calling is
// unsupported but tool_use is, which the capability comparator treats as
// an equivalent (spec §4.2).
func New() *Adapter {
	c := capability.New()
	c.Roles.System = true
	c.Features = capability.ModelFeatures{
		ToolUse:       true,
		Streaming:     true,
		StopSequences: true,
		Vision:        true,
	}
	c.Parameters.Temperature.Supported = true
	c.Parameters.TopP.Supported = true
	c.Modalities.Input[capability.ModalityImage] = true

	// Anthropic requires strict user/assistant alternation; consecutive
	// same-role turns must be merged by the transformation engine before
	// this adapter ever sees them.
	c.Constraints.Messages.AllowConsecutiveSameRole = false

	window := int64(200000)
	c.Constraints.Tokens.MaxContextWindow = &window

	return &Adapter{cap: c}
}

func (a *Adapter) Name() string { return "anthropic" }

func (a *Adapter) Capability() capability.Capability { return a.cap }

func (a *Adapter) BaseURL() string { return "https://api.anthropic.com" }

func (a *Adapter) Endpoint(kind providers.CallKind) string {
	switch kind {
	case providers.CallKindChat:
		return "/v1/messages"
	default:
		return "/v1/messages"
	}
}

func (a *Adapter) Headers(apiKey string) map[string]string {
	return map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": "2023-06-01",
		"Content-Type":      "application/json",
	}
}

// FinalizeRequest is a no-op here: the system-field extraction and
// content-block rewriting happen in EncodeRequest, where the wire JSON is
// actually assembled, rather than on the canonical Request itself.
func (a *Adapter) FinalizeRequest(req *protocol.Request) *protocol.Request {
	return req
}

func (a *Adapter) EncodeRequest(req *protocol.Request) (json.RawMessage, error) {
	return encodeRequest(req)
}

func (a *Adapter) DecodeResponse(body json.RawMessage) (*protocol.Response, error) {
	return decodeResponse(body)
}
