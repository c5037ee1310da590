package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, SchemaVersion, c.Version)
	assert.True(t, c.Modalities.SupportsInput(ModalityText))
	assert.True(t, c.Modalities.SupportsOutput(ModalityText))
	assert.False(t, c.Modalities.SupportsInput(ModalityImage))
	assert.False(t, c.Features.FunctionCalling)
	assert.True(t, c.Roles.User)
	assert.True(t, c.Roles.Assistant)
	assert.False(t, c.Roles.System)
}

func TestSupportsFeature(t *testing.T) {
	c := New()
	c.Features.FunctionCalling = true
	c.Extensions.Experimental = map[string]bool{"custom_feature": true}

	assert.True(t, c.SupportsFeature("function_calling"))
	assert.False(t, c.SupportsFeature("json_mode"))
	assert.True(t, c.SupportsFeature("custom_feature"))
	assert.False(t, c.SupportsFeature("unknown_feature"))
}

func TestDefaultConstraints(t *testing.T) {
	c := New()

	if assert.NotNil(t, c.Constraints.Tokens.MaxContextWindow) {
		assert.Equal(t, int64(4096), *c.Constraints.Tokens.MaxContextWindow)
	}

	if assert.NotNil(t, c.Constraints.Messages.MinMessagesRequired) {
		assert.Equal(t, int64(1), *c.Constraints.Messages.MinMessagesRequired)
	}
}
