// Package transform implements the transformation engine (spec §4.3): it
// rewrites a canonical request so it fits a target provider's capabilities,
// recording every lossy decision it makes along the way.
package transform

import (
	"github.com/samber/lo"

	"github.com/relaymesh/llmgateway/capability"
	"github.com/relaymesh/llmgateway/lossiness"
	"github.com/relaymesh/llmgateway/protocol"
)

// Finalize lets a provider adapter apply its own wire-specific renaming
// after all generic rewrites have run (spec §4.3 "final adapter hook").
type Finalize func(*protocol.Request) *protocol.Request

// Engine rewrites canonical requests to fit one target capability set.
type Engine struct {
	Target   capability.Capability
	Finalize Finalize
}

// New builds an Engine for the given target capability. finalize may be
// nil if the target adapter needs no additional rewriting.
func New(target capability.Capability, finalize Finalize) *Engine {
	return &Engine{Target: target, Finalize: finalize}
}

// Transform rewrites req in place of a clone, never the caller's original,
// returning the rewritten request alongside a lossiness report describing
// everything that had to change. The outgoing request's metadata always
// carries lossy/lossy_reasons, even when nothing was lost (spec §4.3).
func (e *Engine) Transform(req *protocol.Request) (*protocol.Request, lossiness.Report) {
	out := req.Clone()

	var reasons []lossiness.Reason

	var details []string

	if !e.Target.Roles.System && hasSystemMessage(out.Messages) {
		merged, degradedForMerge, partsDegradedToText := mergeSystemMessages(out.Messages)
		out.Messages = merged
		reasons = append(reasons, lossiness.ReasonSystemRoleMerged)
		details = append(details, "system-role messages were merged into the leading user message")

		if degradedForMerge {
			reasons = append(reasons, lossiness.ReasonPartsDegradedForMerge)
			details = append(details, "a user message with structured content could not absorb merged system text inline")
		}

		if partsDegradedToText {
			reasons = append(reasons, lossiness.ReasonPartsDegradedToText)
			details = append(details, "a system message with non-text content parts was degraded to a placeholder string")
		}
	}

	if out.ResponseFormat != nil {
		switch out.ResponseFormat.Type {
		case protocol.ResponseFormatJSONSchema:
			if !e.Target.Features.JSONMode {
				out.ResponseFormat = nil
				reasons = append(reasons, lossiness.ReasonJSONSchemaUnsupported)
				details = append(details, "target does not support JSON-schema-constrained output")
			}
		case protocol.ResponseFormatJSONObject:
			if !e.Target.Features.JSONMode {
				out.ResponseFormat = nil
				reasons = append(reasons, lossiness.ReasonJSONModeUnsupported)
				details = append(details, "target does not support JSON mode")
			}
		}
	}

	if len(out.Tools) > 0 && !e.Target.Features.FunctionCalling && !e.Target.Features.ToolUse {
		out.Tools = nil
		out.ToolChoice = nil
		reasons = append(reasons, lossiness.ReasonFunctionCallingUnsupported)
		details = append(details, "target supports neither function_calling nor tool_use; tool definitions were dropped")
	}

	if out.Stream != nil && *out.Stream && !e.Target.Features.Streaming {
		f := false
		out.Stream = &f
		reasons = append(reasons, lossiness.ReasonStreamingUnsupported)
		details = append(details, "target does not support streaming; request forced to non-streaming")
	}

	droppedParams := e.dropUnsupportedParams(out)
	for _, p := range droppedParams {
		reasons = append(reasons, lossiness.ParamUnsupported(p))
		details = append(details, "target does not support the "+p+" parameter")
	}

	if !e.Target.Constraints.Messages.AllowConsecutiveSameRole && hasConsecutiveSameRole(out.Messages) {
		merged, degradedGroups := mergeConsecutiveSameRole(out.Messages)
		out.Messages = merged
		reasons = append(reasons, lossiness.ReasonConsecutiveSameRoleUnsupported)
		details = append(details, "consecutive same-role messages were merged")

		switch {
		case degradedGroups > 1:
			reasons = append(reasons, lossiness.ReasonPartsMultipleDegraded)
			details = append(details, "multiple merged runs mixed text and structured content and were flattened to text")
		case degradedGroups == 1:
			reasons = append(reasons, lossiness.ReasonPartsDegradedInMerge)
			details = append(details, "a merged run mixed text and structured content and was flattened to text")
		}
	}

	if max := e.Target.Constraints.Tokens.MaxContextWindow; max != nil {
		if estimate := EstimateTokens(out.Messages); estimate > *max {
			reasons = append(reasons, lossiness.ReasonMaxTokensExceeded)
			details = append(details, "estimated request size exceeds the target context window")
		}
	}

	if e.Finalize != nil {
		out = e.Finalize(out)
	}

	out.SetLossy(lo.Map(reasons, func(r lossiness.Reason, _ int) string { return string(r) }))

	report := lossiness.Report{
		IsLossy:         len(reasons) > 0,
		Reasons:         reasons,
		Severity:        lossiness.DetermineSeverity(reasons),
		Details:         details,
		Recommendations: nil,
	}

	return out, report
}

// dropUnsupportedParams clears sampling controls the target does not
// honor and returns their names, in the fixed order spec §4.3 checks them.
func (e *Engine) dropUnsupportedParams(req *protocol.Request) []string {
	var dropped []string

	if req.Temperature != nil && !e.Target.Parameters.Temperature.Supported {
		req.Temperature = nil
		dropped = append(dropped, "temperature")
	}

	if req.TopP != nil && !e.Target.Parameters.TopP.Supported {
		req.TopP = nil
		dropped = append(dropped, "top_p")
	}

	if req.Seed != nil && !e.Target.Features.Seed {
		req.Seed = nil
		dropped = append(dropped, "seed")
	}

	if req.PresencePenalty != nil && !e.Target.Parameters.PresencePenalty.Supported {
		req.PresencePenalty = nil
		dropped = append(dropped, "presence_penalty")
	}

	if req.FrequencyPenalty != nil && !e.Target.Parameters.FrequencyPenalty.Supported {
		req.FrequencyPenalty = nil
		dropped = append(dropped, "frequency_penalty")
	}

	if req.Stop != nil && !e.Target.Features.StopSequences {
		req.Stop = nil
		dropped = append(dropped, "stop")
	}

	return dropped
}
