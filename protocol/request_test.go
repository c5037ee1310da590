package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCloneIsIndependent(t *testing.T) {
	req := &Request{
		Model:    "gpt-test",
		Messages: []Message{NewTextMessage(RoleUser, "hi")},
		Stop:     []string{"STOP"},
		Tools:    []Tool{{Type: "function", Function: FunctionSpec{Name: "f"}}},
		Metadata: map[string]any{"k": "v"},
	}

	clone := req.Clone()
	clone.Messages[0].Text = strPtr("mutated")
	clone.Stop[0] = "OTHER"
	clone.Tools[0].Function.Name = "g"
	clone.Metadata["k"] = "changed"

	require.NotNil(t, req.Messages[0].Text)
	assert.Equal(t, "hi", *req.Messages[0].Text)
	assert.Equal(t, "STOP", req.Stop[0])
	assert.Equal(t, "f", req.Tools[0].Function.Name)
	assert.Equal(t, "v", req.Metadata["k"])
}

func TestRequestCloneNil(t *testing.T) {
	var req *Request
	assert.Nil(t, req.Clone())
}

func TestRequestSetLossy(t *testing.T) {
	req := &Request{Model: "m"}

	req.SetLossy(nil)
	assert.Equal(t, false, req.Metadata["lossy"])

	req.SetLossy([]string{"system_role.merged"})
	assert.Equal(t, true, req.Metadata["lossy"])
	assert.Equal(t, []string{"system_role.merged"}, req.Metadata["lossy_reasons"])
}

func TestToolChoiceMarshalModes(t *testing.T) {
	data, err := (ToolChoice{Mode: "required"}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"required"`, string(data))

	name := "my_fn"
	data, err = (ToolChoice{Function: &name}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"function","function":{"name":"my_fn"}}`, string(data))
}

func TestToolChoiceUnmarshalModes(t *testing.T) {
	var tc ToolChoice
	require.NoError(t, tc.UnmarshalJSON([]byte(`"none"`)))
	assert.Equal(t, "none", tc.Mode)
	assert.Nil(t, tc.Function)

	require.NoError(t, tc.UnmarshalJSON([]byte(`{"type":"function","function":{"name":"x"}}`)))
	require.NotNil(t, tc.Function)
	assert.Equal(t, "x", *tc.Function)
}

func strPtr(s string) *string { return &s }
