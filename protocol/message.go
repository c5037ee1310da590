package protocol

import (
	"encoding/json"
	"errors"
)

// Role enumerates the canonical message roles. Not every provider supports
// every role; the capability taxonomy and transformation engine reconcile
// the difference.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
	RoleTool      Role = "tool"
)

// Message is one turn in the conversation.
//
// Invariant: exactly one of Text/Parts is the active representation. A
// message with zero-length Text and nil Parts counts as empty content.
type Message struct {
	Role Role `json:"role"`

	// Text holds the message content when it is a plain string. Nil if
	// the message uses Parts instead.
	Text *string `json:"-"`

	// Parts holds the message content when it is an ordered sequence of
	// content parts (text/image/audio). Nil if the message uses Text
	// instead. An empty, non-nil slice is a valid (empty) Parts message.
	Parts []ContentPart `json:"-"`

	Name         *string       `json:"name,omitempty"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
	ToolCalls    []ToolCall    `json:"tool_calls,omitempty"`
	ToolCallID   *string       `json:"tool_call_id,omitempty"`

	// Metadata carries free-form, provider-specific per-message data.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IsTextRepresentation reports whether the message content is carried as a
// plain string rather than structured parts.
func (m Message) IsTextRepresentation() bool {
	return m.Parts == nil
}

// IsEmpty reports whether the message carries no content at all.
func (m Message) IsEmpty() bool {
	if m.Parts != nil {
		return len(m.Parts) == 0
	}

	return m.Text == nil || *m.Text == ""
}

// PlainText returns the message's content flattened to a single string: the
// Text field verbatim, or all text-typed Parts joined with "\n". Non-text parts
// are ignored by this accessor (callers that need to know about them should
// inspect Parts directly).
func (m Message) PlainText() string {
	if m.Text != nil {
		return *m.Text
	}

	var out string

	for i, p := range m.Parts {
		if p.Type != ContentPartText {
			continue
		}

		if i > 0 && out != "" {
			out += "\n"
		}

		out += p.Text
	}

	return out
}

// Clone returns a shallow-enough copy of the message, deep-copying the
// slices the transformation engine mutates (Parts, ToolCalls).
func (m Message) Clone() Message {
	clone := m

	if m.Parts != nil {
		clone.Parts = append([]ContentPart(nil), m.Parts...)
	}

	if m.ToolCalls != nil {
		clone.ToolCalls = append([]ToolCall(nil), m.ToolCalls...)
	}

	if m.Metadata != nil {
		clone.Metadata = make(map[string]any, len(m.Metadata))
		for k, v := range m.Metadata {
			clone.Metadata[k] = v
		}
	}

	return clone
}

// NewTextMessage constructs a message with plain-string content.
func NewTextMessage(role Role, text string) Message {
	return Message{Role: role, Text: &text}
}

// NewPartsMessage constructs a message with structured content parts.
func NewPartsMessage(role Role, parts ...ContentPart) Message {
	if parts == nil {
		parts = []ContentPart{}
	}

	return Message{Role: role, Parts: parts}
}

// jsonMessage mirrors Message for (de)serialization, since Text/Parts form a
// union that the JSON wire encodes as a single "content" field.
type jsonMessage struct {
	Role         Role            `json:"role"`
	Content      json.RawMessage `json:"content,omitempty"`
	Name         *string         `json:"name,omitempty"`
	FunctionCall *FunctionCall   `json:"function_call,omitempty"`
	ToolCalls    []ToolCall      `json:"tool_calls,omitempty"`
	ToolCallID   *string         `json:"tool_call_id,omitempty"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
}

// MarshalJSON encodes the Text/Parts union as a single "content" field:
// a bare string for Text, an array for Parts.
func (m Message) MarshalJSON() ([]byte, error) {
	jm := jsonMessage{
		Role:         m.Role,
		Name:         m.Name,
		FunctionCall: m.FunctionCall,
		ToolCalls:    m.ToolCalls,
		ToolCallID:   m.ToolCallID,
		Metadata:     m.Metadata,
	}

	var (
		content []byte
		err     error
	)

	switch {
	case m.Parts != nil:
		content, err = json.Marshal(m.Parts)
	case m.Text != nil:
		content, err = json.Marshal(*m.Text)
	default:
		content, err = json.Marshal("")
	}

	if err != nil {
		return nil, err
	}

	jm.Content = content

	return json.Marshal(jm)
}

// UnmarshalJSON decodes the "content" field into Text or Parts depending on
// its wire shape.
func (m *Message) UnmarshalJSON(data []byte) error {
	var jm jsonMessage
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}

	m.Role = jm.Role
	m.Name = jm.Name
	m.FunctionCall = jm.FunctionCall
	m.ToolCalls = jm.ToolCalls
	m.ToolCallID = jm.ToolCallID
	m.Metadata = jm.Metadata
	m.Text = nil
	m.Parts = nil

	if len(jm.Content) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(jm.Content, &text); err == nil {
		m.Text = &text
		return nil
	}

	var parts []ContentPart
	if err := json.Unmarshal(jm.Content, &parts); err == nil {
		m.Parts = parts
		return nil
	}

	return errors.New("protocol: message content must be a string or an array of content parts")
}

// ContentPartType enumerates the kinds of structured content a message can
// carry.
type ContentPartType string

const (
	ContentPartText  ContentPartType = "text"
	ContentPartImage ContentPartType = "image"
	ContentPartAudio ContentPartType = "audio"
)

// ContentPart is one element of a structured (non-plain-text) message body.
type ContentPart struct {
	Type ContentPartType `json:"type"`

	// Text holds the content when Type == ContentPartText.
	Text string `json:"text,omitempty"`

	// Image holds the content when Type == ContentPartImage.
	Image *MediaRef `json:"image,omitempty"`

	// Audio holds the content when Type == ContentPartAudio.
	Audio *MediaRef `json:"audio,omitempty"`
}

// MediaRef references binary media either by URL or inline base64 data.
type MediaRef struct {
	URL      string `json:"url,omitempty"`
	Base64   string `json:"base64,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// FunctionCall is a legacy single-function invocation requested by the
// model (superseded by ToolCalls on providers that support multiple tools).
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}
