// Package lossiness implements the capability comparator and the stable,
// namespaced reason taxonomy that both the comparator and the
// transformation engine emit when a source capability cannot be carried
// losslessly onto a target.
package lossiness

import "fmt"

// Reason is one entry in the closed, namespaced lossiness taxonomy. The
// string form is what crosses the wire (request metadata, reports); the
// set of values is closed even though Go can't enforce that statically.
type Reason string

const (
	ReasonSystemRoleMerged               Reason = "system_role.merged"
	ReasonJSONModeUnsupported            Reason = "response_format.json_mode.unsupported"
	ReasonJSONSchemaUnsupported          Reason = "response_format.json_schema.unsupported"
	ReasonFunctionCallingUnsupported     Reason = "tools.function_calling.unsupported"
	ReasonStreamingUnsupported           Reason = "streaming.unsupported"
	ReasonConsecutiveSameRoleUnsupported Reason = "messages.consecutive_same_role.unsupported"
	ReasonMaxTokensExceeded              Reason = "limits.max_tokens.exceeded"
	ReasonRateLimitTightened             Reason = "limits.rate_limit.tightened"
	ReasonMissingSystemRole              Reason = "roles.system.missing"
	ReasonMissingNonSystemRole           Reason = "roles.missing"
	ReasonPartsDegradedToText            Reason = "content.parts.degraded_to_text"
	ReasonPartsDegradedForMerge          Reason = "content.parts.degraded_for_merge"
	ReasonPartsDegradedInMerge           Reason = "content.parts.degraded_in_merge"
	ReasonPartsMultipleDegraded          Reason = "content.parts.multiple_degraded"
)

// ParamUnsupported names an individual sampling control the target does not
// honor: "param.unsupported.<name>".
func ParamUnsupported(name string) Reason {
	return Reason(fmt.Sprintf("param.unsupported.%s", name))
}

// ModalityMissing names an input/output modality the target cannot accept
// or produce: "modality.missing.<kind>".
func ModalityMissing(kind string) Reason {
	return Reason(fmt.Sprintf("modality.missing.%s", kind))
}

// UnsupportedFormat names a response/content format the target cannot
// produce: "format.unsupported.<name>".
func UnsupportedFormat(name string) Reason {
	return Reason(fmt.Sprintf("format.unsupported.%s", name))
}

// MissingExtension names a provider extension capability the target lacks:
// "extension.missing.<name>".
func MissingExtension(name string) Reason {
	return Reason(fmt.Sprintf("extension.missing.%s", name))
}

// ConstrainedParameter names a sampling control whose bounds are tighter on
// the target than the source requested: "param.constrained.<name>".
func ConstrainedParameter(name string) Reason {
	return Reason(fmt.Sprintf("param.constrained.%s", name))
}
