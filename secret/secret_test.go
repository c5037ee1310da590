package secret

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAndGoStringAreRedacted(t *testing.T) {
	s := New("sk-1234567890abcdef")

	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", s))
}

func TestExposeReturnsRawValue(t *testing.T) {
	s := New("my-secret-value")
	assert.Equal(t, "my-secret-value", s.Expose())
}

func TestJSONRoundTripPreservesRawValue(t *testing.T) {
	type config struct {
		APIKey Secret `json:"api_key"`
	}

	original := config{APIKey: New("sk-abcdef")}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key":"sk-abcdef"}`, string(data))

	var restored config

	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original.APIKey.Expose(), restored.APIKey.Expose())
}

func TestPartialRedactShortSecretsFullyHidden(t *testing.T) {
	s := New("short")
	assert.Equal(t, "[REDACTED]", s.PartialRedact())
}

func TestPartialRedactLongerSecretsShowEdges(t *testing.T) {
	s := New("sk-1234567890abcdef")
	assert.Equal(t, "sk...ef", s.PartialRedact())
}

func TestPartialRedactEmpty(t *testing.T) {
	assert.Equal(t, "[EMPTY]", New("").PartialRedact())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, New("").IsEmpty())
	assert.False(t, New("x").IsEmpty())
}
