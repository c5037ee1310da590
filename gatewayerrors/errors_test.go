package gatewayerrors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableTable(t *testing.T) {
	retryable := []Kind{KindRateLimit, KindTimeout, KindServerError, KindNetwork, KindModelNotAvailable}
	for _, k := range retryable {
		assert.True(t, IsRetryable(k), "expected %s to be retryable", k)
	}

	notRetryable := []Kind{KindInvalidRequest, KindAuthentication, KindCustom, KindAllProvidersFailed}
	for _, k := range notRetryable {
		assert.False(t, IsRetryable(k), "expected %s to not be retryable", k)
	}
}

func TestIsRetryableIsPureFunctionOfKind(t *testing.T) {
	a := RateLimit("req-1", nil)
	b := RateLimit("req-2", nil)

	assert.Equal(t, a.IsRetryable(), b.IsRetryable())
}

func TestErrorMessageEmbedsRequestID(t *testing.T) {
	err := Authentication("req-123")

	assert.Contains(t, err.Error(), "req-123")
}

func TestRetryDelayOnlySetForRateLimit(t *testing.T) {
	delay := 5 * time.Second
	rl := RateLimit("req-1", &delay)
	assert.Equal(t, &delay, rl.RetryDelay())

	timeout := Timeout("req-1")
	assert.Nil(t, timeout.RetryDelay())
}

func TestClassifyMessageRateLimit(t *testing.T) {
	err := ClassifyMessage("openai", "req-1", "Rate limit exceeded")
	assert.Equal(t, KindRateLimit, err.Kind)
}

func TestClassifyMessageProviderSpecificPatterns(t *testing.T) {
	err := ClassifyMessage("anthropic", "req-1", "overloaded, please retry")
	assert.Equal(t, KindServerError, err.Kind)

	err = ClassifyMessage("openai", "req-1", "insufficient_quota for this account")
	assert.Equal(t, KindRateLimit, err.Kind)
}

func TestClassifyMessageFallsBackToCustom(t *testing.T) {
	err := ClassifyMessage("cohere", "req-1", "something unexpected happened")
	assert.Equal(t, KindCustom, err.Kind)
	assert.Equal(t, "cohere_error", err.Code)
}

func TestAllProvidersFailedCarriesPerProviderErrors(t *testing.T) {
	err := AllProvidersFailed("req-1", map[string]string{"openai": "timeout", "anthropic": "auth"})

	assert.Equal(t, KindAllProvidersFailed, err.Kind)
	assert.Len(t, err.ProviderErrors, 2)
}
