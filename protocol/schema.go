package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ValidateResponseFormatSchema structurally checks that Schema is a
// well-formed JSON Schema document. It does not rewrite Schema; callers
// still forward it to the provider verbatim as opaque bytes (spec §4.1).
func (rf *ResponseFormat) ValidateResponseFormatSchema() error {
	if rf == nil || rf.Type != ResponseFormatJSONSchema {
		return nil
	}

	if len(rf.Schema) == 0 {
		return fmt.Errorf("protocol: response_format type %q requires a non-empty schema", ResponseFormatJSONSchema)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(rf.Schema, &schema); err != nil {
		return fmt.Errorf("protocol: response_format schema is not a valid JSON Schema: %w", err)
	}

	return nil
}
