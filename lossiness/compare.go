package lossiness

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/relaymesh/llmgateway/capability"
)

// Compare evaluates whether routing a request built against source's
// capabilities onto a target would lose information, per spec §4.2.
//
// The function_calling/tool_use equivalence exception applies: source
// function_calling or tool_use is not reported missing if the target has
// either flag set.
func Compare(source, target capability.Capability) Report {
	var reasons []Reason

	var details []string

	addFeatures(source, target, &reasons, &details)
	addModalities(source, target, &reasons, &details)
	addParameters(source, target, &reasons, &details)
	addRoles(source, target, &reasons, &details)
	addConstraints(source, target, &reasons, &details)

	return Report{
		IsLossy:         len(reasons) > 0,
		Reasons:         reasons,
		Severity:        DetermineSeverity(reasons),
		Details:         details,
		Recommendations: recommendationsFor(reasons),
	}
}

func addFeatures(source, target capability.Capability, reasons *[]Reason, details *[]string) {
	hasFunctionCallEquivalent := target.Features.FunctionCalling || target.Features.ToolUse

	if (source.Features.FunctionCalling || source.Features.ToolUse) && !hasFunctionCallEquivalent {
		*reasons = append(*reasons, ReasonFunctionCallingUnsupported)
		*details = append(*details, "target provider supports neither function_calling nor tool_use")
	}

	if source.Features.JSONMode && !target.Features.JSONMode {
		*reasons = append(*reasons, ReasonJSONModeUnsupported)
		*details = append(*details, "target provider does not support JSON mode")
	}

	if source.Features.Streaming && !target.Features.Streaming {
		*reasons = append(*reasons, ReasonStreamingUnsupported)
		*details = append(*details, "target provider does not support streaming")
	}

	if source.Features.Vision && !target.Features.Vision {
		*reasons = append(*reasons, ModalityMissing("image"))
		*details = append(*details, "target provider does not support vision input")
	}
}

func addModalities(source, target capability.Capability, reasons *[]Reason, details *[]string) {
	missingInputs := lo.Filter(modalityKeys(source.Modalities.Input), func(m capability.Modality, _ int) bool {
		return !target.Modalities.SupportsInput(m)
	})

	for _, m := range missingInputs {
		*reasons = append(*reasons, ModalityMissing(string(m)))
		*details = append(*details, fmt.Sprintf("target does not accept %s input", m))
	}

	missingOutputs := lo.Filter(modalityKeys(source.Modalities.Output), func(m capability.Modality, _ int) bool {
		return !target.Modalities.SupportsOutput(m)
	})

	for _, m := range missingOutputs {
		*reasons = append(*reasons, ModalityMissing(string(m)))
		*details = append(*details, fmt.Sprintf("target does not produce %s output", m))
	}
}

func modalityKeys(set map[capability.Modality]bool) []capability.Modality {
	out := make([]capability.Modality, 0, len(set))
	for m, ok := range set {
		if ok {
			out = append(out, m)
		}
	}

	return out
}

func addParameters(source, target capability.Capability, reasons *[]Reason, details *[]string) {
	type param struct {
		name   string
		source capability.ParameterSupport[float64]
		target capability.ParameterSupport[float64]
	}

	for _, p := range []param{
		{"temperature", source.Parameters.Temperature, target.Parameters.Temperature},
		{"top_p", source.Parameters.TopP, target.Parameters.TopP},
		{"frequency_penalty", source.Parameters.FrequencyPenalty, target.Parameters.FrequencyPenalty},
		{"presence_penalty", source.Parameters.PresencePenalty, target.Parameters.PresencePenalty},
	} {
		if p.source.Supported && !p.target.Supported {
			*reasons = append(*reasons, ParamUnsupported(p.name))
			*details = append(*details, fmt.Sprintf("target does not support the %s parameter", p.name))
		}
	}

	if source.Parameters.MaxTokens.Max != nil && target.Parameters.MaxTokens.Max != nil {
		if *target.Parameters.MaxTokens.Max < *source.Parameters.MaxTokens.Max {
			*reasons = append(*reasons, ConstrainedParameter("max_tokens"))
			*details = append(*details, fmt.Sprintf(
				"target max_tokens (%d) is less than source (%d)",
				*target.Parameters.MaxTokens.Max, *source.Parameters.MaxTokens.Max,
			))
		}
	}
}

func addRoles(source, target capability.Capability, reasons *[]Reason, details *[]string) {
	if source.Roles.System && !target.Roles.System {
		*reasons = append(*reasons, ReasonMissingSystemRole)
		*details = append(*details, "target does not support the system role")
	}

	if source.Roles.Function && !target.Roles.Function {
		*reasons = append(*reasons, ReasonMissingNonSystemRole)
		*details = append(*details, "target does not support the function role")
	}

	if source.Roles.Tool && !target.Roles.Tool {
		*reasons = append(*reasons, ReasonMissingNonSystemRole)
		*details = append(*details, "target does not support the tool role")
	}
}

func addConstraints(source, target capability.Capability, reasons *[]Reason, details *[]string) {
	sourceCtx := source.Constraints.Tokens.MaxContextWindow
	targetCtx := target.Constraints.Tokens.MaxContextWindow

	if sourceCtx != nil && targetCtx != nil && *targetCtx < *sourceCtx {
		*reasons = append(*reasons, ReasonMaxTokensExceeded)
		*details = append(*details, fmt.Sprintf(
			"target context window (%d) is smaller than source (%d)",
			*targetCtx, *sourceCtx,
		))
	}

	sourceRPM := source.Constraints.Rate.RequestsPerMinute
	targetRPM := target.Constraints.Rate.RequestsPerMinute

	if sourceRPM != nil && targetRPM != nil && *targetRPM < *sourceRPM {
		*reasons = append(*reasons, ReasonRateLimitTightened)
		*details = append(*details, fmt.Sprintf(
			"target rate limit (%d req/min) is lower than source (%d req/min)",
			*targetRPM, *sourceRPM,
		))
	}
}

func recommendationsFor(reasons []Reason) []string {
	var out []string

	if lo.ContainsBy(reasons, func(r Reason) bool { return r == ReasonFunctionCallingUnsupported }) {
		out = append(out, "restructure the request without tool/function definitions, or route to a provider that supports them")
	}

	if lo.ContainsBy(reasons, func(r Reason) bool { return r == ReasonMaxTokensExceeded }) {
		out = append(out, "shorten the conversation or route to a model with a larger context window")
	}

	if lo.ContainsBy(reasons, func(r Reason) bool { return len(r) > len("modality.missing.") && r[:len("modality.missing.")] == "modality.missing." }) {
		out = append(out, "preprocess multimodal inputs, or route to a provider that supports the missing modality")
	}

	return out
}
