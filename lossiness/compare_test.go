package lossiness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relaymesh/llmgateway/capability"
)

func TestCompareIdenticalCapabilitiesIsNotLossy(t *testing.T) {
	c := capability.New()

	report := Compare(c, c)

	assert.False(t, report.IsLossy)
	assert.Equal(t, SeverityNone, report.Severity)
	assert.Empty(t, report.Reasons)
}

func TestCompareMissingFeatures(t *testing.T) {
	source := capability.New()
	source.Features.FunctionCalling = true
	source.Features.JSONMode = true

	target := capability.New()

	report := Compare(source, target)

	assert.True(t, report.IsLossy)
	assert.Contains(t, report.Reasons, ReasonFunctionCallingUnsupported)
	assert.Contains(t, report.Reasons, ReasonJSONModeUnsupported)
	assert.GreaterOrEqual(t, report.Severity, SeverityMedium)
}

func TestCompareFunctionCallingToolUseEquivalence(t *testing.T) {
	source := capability.New()
	source.Features.FunctionCalling = true

	target := capability.New()
	target.Features.ToolUse = true

	report := Compare(source, target)

	assert.NotContains(t, report.Reasons, ReasonFunctionCallingUnsupported)
}

func TestCompareContextWindowShrink(t *testing.T) {
	sourceCtx := int64(10000)
	targetCtx := int64(5000)

	source := capability.New()
	source.Constraints.Tokens.MaxContextWindow = &sourceCtx

	target := capability.New()
	target.Constraints.Tokens.MaxContextWindow = &targetCtx

	report := Compare(source, target)

	assert.True(t, report.IsLossy)
	assert.Contains(t, report.Reasons, ReasonMaxTokensExceeded)
	assert.Equal(t, SeverityHigh, report.Severity)
}

func TestCompareMissingModalityIsCritical(t *testing.T) {
	source := capability.New()
	source.Modalities.Input[capability.ModalityImage] = true

	target := capability.New()

	report := Compare(source, target)

	assert.True(t, report.IsLossy)
	assert.Equal(t, SeverityCritical, report.Severity)
}

func TestDetermineSeverityEmpty(t *testing.T) {
	assert.Equal(t, SeverityNone, DetermineSeverity(nil))
}
