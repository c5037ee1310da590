// Package protocol defines the canonical, provider-neutral request/response
// schema that the rest of the gateway operates on. Every provider adapter
// converts to and from these types; nothing outside this package should need
// to know the wire shape of a specific provider.
package protocol

import "encoding/json"

// Request is the canonical chat-completion request. It is the lingua franca
// between callers, the transformation engine, and provider adapters.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`

	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	MaxOutputTokens  *int64   `json:"max_output_tokens,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	N                *int64   `json:"n,omitempty"`
	UserID           *string  `json:"user,omitempty"`

	Stream *bool `json:"stream,omitempty"`

	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	Tools      []Tool      `json:"tools,omitempty"`
	ToolChoice *ToolChoice `json:"tool_choice,omitempty"`

	// Metadata carries free-form provider-specific request data that does
	// not map onto any canonical field. Adapters may read and write it.
	Metadata map[string]any `json:"metadata,omitempty"`

	// RequestID correlates this request with the log lines and errors
	// produced on its behalf. Nothing in this module assigns it; it is
	// whatever the caller set, and it never crosses the wire.
	RequestID string `json:"-"`
}

// Clone returns a deep-enough copy of the request for the transformation
// engine to mutate without affecting the caller's original value.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Messages = make([]Message, len(r.Messages))

	for i, m := range r.Messages {
		clone.Messages[i] = m.Clone()
	}

	if r.Stop != nil {
		clone.Stop = append([]string(nil), r.Stop...)
	}

	if r.Tools != nil {
		clone.Tools = append([]Tool(nil), r.Tools...)
	}

	if r.Metadata != nil {
		clone.Metadata = make(map[string]any, len(r.Metadata))
		for k, v := range r.Metadata {
			clone.Metadata[k] = v
		}
	}

	return &clone
}

// SetLossy records lossiness metadata on the outgoing request, per the
// transformation engine's contract (spec §4.3): callers that only look at
// the request (e.g. logging middleware) can still observe what was lost.
func (r *Request) SetLossy(reasons []string) {
	if r.Metadata == nil {
		r.Metadata = map[string]any{}
	}

	r.Metadata["lossy"] = len(reasons) > 0
	r.Metadata["lossy_reasons"] = reasons
}

// ResponseFormat directs the model to produce plain text, a JSON object, or
// JSON conforming to an embedded schema.
type ResponseFormat struct {
	Type ResponseFormatType `json:"type"`

	// Schema is the embedded JSON-schema payload for Type ==
	// ResponseFormatJSONSchema. It is preserved verbatim as opaque bytes;
	// the gateway never rewrites it, only validates its shape when asked.
	Schema json.RawMessage `json:"schema,omitempty"`

	// Name optionally labels a JSON-schema response format, as some
	// providers require a schema name alongside the schema body.
	Name string `json:"name,omitempty"`
}

// ResponseFormatType enumerates the supported response-format directives.
type ResponseFormatType string

const (
	ResponseFormatText       ResponseFormatType = "text"
	ResponseFormatJSONObject ResponseFormatType = "json_object"
	ResponseFormatJSONSchema ResponseFormatType = "json_schema"
)

// Tool is a function the model may call.
type Tool struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec describes a callable function's name, description, and
// JSON-schema parameters.
type FunctionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ToolChoice directs whether/which tool the model must use.
type ToolChoice struct {
	// Mode is one of "auto", "none", "required". Mutually exclusive with
	// Function being set.
	Mode string `json:"-"`

	// Function, when set, forces the model to call this specific
	// function.
	Function *string `json:"-"`
}

// MarshalJSON renders ToolChoice the way providers expect: either a bare
// string ("auto"/"none"/"required") or an object naming a function.
func (t ToolChoice) MarshalJSON() ([]byte, error) {
	if t.Function != nil {
		return json.Marshal(struct {
			Type     string `json:"type"`
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		}{
			Type: "function",
			Function: struct {
				Name string `json:"name"`
			}{Name: *t.Function},
		})
	}

	mode := t.Mode
	if mode == "" {
		mode = "auto"
	}

	return json.Marshal(mode)
}

// UnmarshalJSON accepts either the bare-string or named-function form.
func (t *ToolChoice) UnmarshalJSON(data []byte) error {
	var mode string
	if err := json.Unmarshal(data, &mode); err == nil {
		t.Mode = mode
		t.Function = nil

		return nil
	}

	var named struct {
		Function struct {
			Name string `json:"name"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}

	name := named.Function.Name
	t.Function = &name

	return nil
}
