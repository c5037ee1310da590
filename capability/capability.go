// Package capability models the structured capability taxonomy a provider
// or model publishes: which modalities it accepts, which features it
// supports, which sampling parameters it honors, and what limits it
// enforces. Capability values are immutable once published — nothing in
// this package mutates a Capability in place.
package capability

// SchemaVersion is the version of the capability schema these types encode.
const SchemaVersion = "0.1.0"

// Capability is the full published capability set for one model.
type Capability struct {
	Version     string          `json:"version"`
	Modalities  ModalitySupport `json:"modalities"`
	Features    ModelFeatures   `json:"features"`
	Parameters  ControlParams   `json:"parameters"`
	Roles       RoleSupport     `json:"roles"`
	Constraints Constraints     `json:"constraints"`
	Extensions  Extensions      `json:"extensions"`
}

// New returns a Capability with the documented defaults: text-only
// modality, no optional features, no parameter support, only the
// user/assistant roles, and the conservative default constraints.
func New() Capability {
	return Capability{
		Version:     SchemaVersion,
		Modalities:  defaultModalitySupport(),
		Features:    ModelFeatures{},
		Parameters:  ControlParams{},
		Roles:       defaultRoleSupport(),
		Constraints: defaultConstraints(),
		Extensions:  defaultExtensions(),
	}
}

// SupportsFeature reports whether a named feature flag is set, falling back
// to the experimental-extensions set for names outside the fixed
// ModelFeatures fields.
func (c Capability) SupportsFeature(name string) bool {
	switch name {
	case "function_calling":
		return c.Features.FunctionCalling
	case "json_mode":
		return c.Features.JSONMode
	case "streaming":
		return c.Features.Streaming
	case "logprobs":
		return c.Features.LogProbs
	case "multiple_responses":
		return c.Features.MultipleResponses
	case "stop_sequences":
		return c.Features.StopSequences
	case "seed":
		return c.Features.Seed
	case "tool_use":
		return c.Features.ToolUse
	case "vision":
		return c.Features.Vision
	default:
		_, ok := c.Extensions.Experimental[name]
		return ok
	}
}

// ModelFeatures is the set of boolean feature flags spec §3 names.
type ModelFeatures struct {
	FunctionCalling   bool `json:"function_calling"`
	ToolUse           bool `json:"tool_use"`
	JSONMode          bool `json:"json_mode"`
	Streaming         bool `json:"streaming"`
	LogProbs          bool `json:"logprobs"`
	MultipleResponses bool `json:"multiple_responses"`
	StopSequences     bool `json:"stop_sequences"`
	Seed              bool `json:"seed"`
	Vision            bool `json:"vision"`
}

// ControlParams records, per sampling control, whether the model honors it
// and within what bounds.
type ControlParams struct {
	Temperature       ParameterSupport[float64] `json:"temperature"`
	TopP              ParameterSupport[float64] `json:"top_p"`
	TopK              ParameterSupport[int64]   `json:"top_k"`
	MaxTokens         ParameterSupport[int64]   `json:"max_tokens"`
	FrequencyPenalty  ParameterSupport[float64] `json:"frequency_penalty"`
	PresencePenalty   ParameterSupport[float64] `json:"presence_penalty"`
	RepetitionPenalty ParameterSupport[float64] `json:"repetition_penalty"`
}

// ParameterSupport describes whether one sampling control is supported and,
// if so, the bounds and default the provider applies.
type ParameterSupport[T any] struct {
	Supported bool `json:"supported"`
	Min       *T   `json:"min,omitempty"`
	Max       *T   `json:"max,omitempty"`
	Default   *T   `json:"default,omitempty"`
}

// RoleSupport records which canonical message roles a model accepts.
type RoleSupport struct {
	System      bool            `json:"system"`
	User        bool            `json:"user"`
	Assistant   bool            `json:"assistant"`
	Function    bool            `json:"function"`
	Tool        bool            `json:"tool"`
	CustomRoles map[string]bool `json:"custom_roles,omitempty"`
}

func defaultRoleSupport() RoleSupport {
	return RoleSupport{User: true, Assistant: true}
}

// Extensions carries custom, provider-specific, or experimental capability
// data that doesn't fit the fixed schema.
type Extensions struct {
	Custom       map[string]any  `json:"custom,omitempty"`
	Experimental map[string]bool `json:"experimental,omitempty"`
}

func defaultExtensions() Extensions {
	return Extensions{}
}
