package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/relaymesh/llmgateway/gatewayerrors"
)

func TestDefaultPolicyValues(t *testing.T) {
	p := Default()

	assert.Equal(t, uint32(3), p.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, p.InitialDelay)
	assert.Equal(t, 2.0, p.ExponentialBase)
}

func TestExponentialBackoffShapeNoJitter(t *testing.T) {
	p := Policy{
		MaxRetries:      3,
		InitialDelay:    100 * time.Millisecond,
		MaxDelay:        1000 * time.Millisecond,
		ExponentialBase: 2.0,
		JitterFactor:    0,
	}

	err := gatewayerrors.Timeout("req-1")

	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1000 * time.Millisecond,
		1000 * time.Millisecond,
	}

	for attempt, want := range expected {
		got := p.CalculateDelay(uint32(attempt), err)
		assert.Equal(t, want, got, "attempt %d", attempt)
	}
}

func TestRetryAfterRespectedRegardlessOfAttempt(t *testing.T) {
	p := Policy{RespectRetryAfter: true}

	retryAfter := 5 * time.Second
	err := gatewayerrors.RateLimit("req-1", &retryAfter)

	assert.Equal(t, retryAfter, p.CalculateDelay(0, err))
	assert.Equal(t, retryAfter, p.CalculateDelay(7, err))
}

func TestShouldRetryRespectsMaxRetriesAndRetryability(t *testing.T) {
	p := Policy{MaxRetries: 2}

	timeout := gatewayerrors.Timeout("req-1")
	assert.True(t, p.ShouldRetry(timeout, 0))
	assert.True(t, p.ShouldRetry(timeout, 1))
	assert.False(t, p.ShouldRetry(timeout, 2))

	auth := gatewayerrors.Authentication("req-1")
	assert.False(t, p.ShouldRetry(auth, 0))
}
