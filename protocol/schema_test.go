package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponseFormatSchemaAcceptsValidSchema(t *testing.T) {
	rf := &ResponseFormat{
		Type:   ResponseFormatJSONSchema,
		Name:   "weather",
		Schema: json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`),
	}

	assert.NoError(t, rf.ValidateResponseFormatSchema())
}

func TestValidateResponseFormatSchemaRejectsEmpty(t *testing.T) {
	rf := &ResponseFormat{Type: ResponseFormatJSONSchema}

	assert.Error(t, rf.ValidateResponseFormatSchema())
}

func TestValidateResponseFormatSchemaRejectsMalformedJSON(t *testing.T) {
	rf := &ResponseFormat{
		Type:   ResponseFormatJSONSchema,
		Schema: json.RawMessage(`{not json`),
	}

	assert.Error(t, rf.ValidateResponseFormatSchema())
}

func TestValidateResponseFormatSchemaSkippedForOtherTypes(t *testing.T) {
	rf := &ResponseFormat{Type: ResponseFormatText}

	assert.NoError(t, rf.ValidateResponseFormatSchema())
}
