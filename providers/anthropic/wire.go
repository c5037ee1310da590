package anthropic

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/relaymesh/llmgateway/protocol"
)

// encodeRequest rewrites a canonical request into Anthropic's Messages API
// wire shape (spec §4.4): system content moves to a top-level "system"
// field rather than appearing as a message, and image content becomes a
// base64 source block.
//
// It builds the JSON incrementally with sjson rather than through a
// fully-typed intermediate struct.
func encodeRequest(req *protocol.Request) (json.RawMessage, error) {
	doc := []byte(`{}`)

	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}

		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("model", req.Model)
	set("max_tokens", resolveMaxTokens(req))

	if req.Temperature != nil {
		set("temperature", *req.Temperature)
	}

	if req.TopP != nil {
		set("top_p", *req.TopP)
	}

	if req.Stream != nil {
		set("stream", *req.Stream)
	}

	if len(req.Stop) > 0 {
		set("stop_sequences", req.Stop)
	}

	if system := extractSystemText(req.Messages); system != "" {
		set("system", system)
	}

	for _, tool := range req.Tools {
		set("tools.-1", map[string]any{
			"name":         tool.Function.Name,
			"description":  tool.Function.Description,
			"input_schema": json.RawMessage(nonEmptyOr(tool.Function.Parameters, []byte("{}"))),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("anthropic: encode request: %w", err)
	}

	for _, block := range buildMessageBlocks(req.Messages) {
		doc, err = sjson.SetBytes(doc, "messages.-1", block)
		if err != nil {
			return nil, fmt.Errorf("anthropic: encode messages: %w", err)
		}
	}

	return json.RawMessage(doc), nil
}

func resolveMaxTokens(req *protocol.Request) int64 {
	if req.MaxOutputTokens != nil {
		return *req.MaxOutputTokens
	}

	return 4096
}

func nonEmptyOr(data json.RawMessage, fallback json.RawMessage) json.RawMessage {
	if len(data) == 0 {
		return fallback
	}

	return data
}

// extractSystemText concatenates every system-role message's text, in
// order, separated by a blank line, as Anthropic's top-level "system"
// field expects.
func extractSystemText(messages []protocol.Message) string {
	var parts []string

	for _, m := range messages {
		if m.Role != protocol.RoleSystem {
			continue
		}

		if text := m.PlainText(); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n")
}

// buildMessageBlocks converts non-system messages into Anthropic message
// objects. Function/tool-result messages become a user message carrying a
// tool_result block, since Anthropic has no standalone tool/function role.
func buildMessageBlocks(messages []protocol.Message) []map[string]any {
	var out []map[string]any

	for _, m := range messages {
		switch m.Role {
		case protocol.RoleSystem:
			continue
		case protocol.RoleTool, protocol.RoleFunction:
			callID := ""
			if m.ToolCallID != nil {
				callID = *m.ToolCallID
			}

			out = append(out, map[string]any{
				"role": "user",
				"content": []map[string]any{{
					"type":        "tool_result",
					"tool_use_id": callID,
					"content":     m.PlainText(),
				}},
			})
		case protocol.RoleAssistant:
			out = append(out, map[string]any{
				"role":    "assistant",
				"content": buildContentBlocks(m),
			})
		default:
			out = append(out, map[string]any{
				"role":    "user",
				"content": buildContentBlocks(m),
			})
		}
	}

	return out
}

// buildContentBlocks renders one message's content as Anthropic content
// blocks: text blocks, image blocks with a base64 source, and tool_use
// blocks for any requested tool calls.
func buildContentBlocks(m protocol.Message) []map[string]any {
	var blocks []map[string]any

	switch {
	case m.Parts != nil:
		for _, p := range m.Parts {
			switch p.Type {
			case protocol.ContentPartText:
				if p.Text != "" {
					blocks = append(blocks, map[string]any{"type": "text", "text": p.Text})
				}
			case protocol.ContentPartImage:
				if p.Image != nil {
					blocks = append(blocks, imageBlock(p.Image))
				}
			}
		}
	case m.Text != nil && *m.Text != "":
		blocks = append(blocks, map[string]any{"type": "text", "text": *m.Text})
	}

	for _, tc := range m.ToolCalls {
		blocks = append(blocks, map[string]any{
			"type":  "tool_use",
			"id":    tc.ID,
			"name":  tc.Function.Name,
			"input": json.RawMessage(nonEmptyOr(json.RawMessage(tc.Function.Arguments), []byte("{}"))),
		})
	}

	return blocks
}

func imageBlock(ref *protocol.MediaRef) map[string]any {
	mediaType := ref.MimeType
	if mediaType == "" {
		mediaType = "image/png"
	}

	data := ref.Base64
	if data == "" {
		data = ref.URL
	}

	return map[string]any{
		"type": "image",
		"source": map[string]any{
			"type":       "base64",
			"media_type": mediaType,
			"data":       data,
		},
	}
}

// decodeResponse parses an Anthropic Messages API response into the
// canonical Response shape: text blocks concatenate in order, stop_reason
// remaps to the canonical finish-reason vocabulary, and input/output token
// counts rename to prompt/completion tokens (spec §4.4).
func decodeResponse(body json.RawMessage) (*protocol.Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("anthropic: response body is not valid JSON")
	}

	parsed := gjson.ParseBytes(body)

	var textParts []string

	var toolCalls []protocol.ToolCall

	for _, block := range parsed.Get("content").Array() {
		switch block.Get("type").String() {
		case "text":
			textParts = append(textParts, block.Get("text").String())
		case "tool_use":
			toolCalls = append(toolCalls, protocol.ToolCall{
				ID:   block.Get("id").String(),
				Type: "function",
				Function: protocol.FunctionCall{
					Name:      block.Get("name").String(),
					Arguments: block.Get("input").Raw,
				},
			})
		}
	}

	msg := protocol.Message{Role: protocol.RoleAssistant}

	text := strings.Join(textParts, "")
	msg.Text = &text
	msg.ToolCalls = toolCalls

	resp := &protocol.Response{
		ID:     parsed.Get("id").String(),
		Object: "chat.completion",
		Model:  parsed.Get("model").String(),
		Choices: []protocol.Choice{{
			Index:        0,
			Message:      msg,
			FinishReason: remapStopReason(parsed.Get("stop_reason").String()),
		}},
	}

	if usage := parsed.Get("usage"); usage.Exists() {
		input := usage.Get("input_tokens").Int()
		output := usage.Get("output_tokens").Int()
		resp.Usage = &protocol.Usage{
			PromptTokens:     input,
			CompletionTokens: output,
			TotalTokens:      input + output,
		}
	}

	return resp, nil
}

// remapStopReason translates Anthropic's stop_reason vocabulary onto the
// canonical finish-reason vocabulary (spec §4.4); unrecognized values pass
// through unchanged.
func remapStopReason(reason string) string {
	switch reason {
	case "end_turn":
		return protocol.FinishReasonStop
	case "max_tokens":
		return protocol.FinishReasonLength
	case "stop_sequence":
		return protocol.FinishReasonStop
	case "tool_use":
		return protocol.FinishReasonToolCalls
	case "":
		return protocol.FinishReasonStop
	default:
		return reason
	}
}
