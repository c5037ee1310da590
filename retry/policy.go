// Package retry implements the configurable retry policy and executor
// driving per-provider resilience (spec §4.6): exponential backoff with
// jitter, Retry-After respect, and a total-timeout budget.
package retry

import (
	"math/rand/v2"
	"time"

	"github.com/relaymesh/llmgateway/gatewayerrors"
)

// Policy configures retry behavior for one provider attempt sequence.
type Policy struct {
	MaxRetries        uint32
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	ExponentialBase   float64
	JitterFactor      float64
	RespectRetryAfter bool

	// TotalTimeout bounds the cumulative time this policy will spend
	// retrying. Zero means unbounded.
	TotalTimeout time.Duration
}

// Default mirrors the teacher ecosystem's conservative-by-default retry
// posture: three retries, 100ms initial delay doubling up to 10s, light
// jitter, Retry-After respected, 30s overall budget.
func Default() Policy {
	return Policy{
		MaxRetries:        3,
		InitialDelay:      100 * time.Millisecond,
		MaxDelay:          10 * time.Second,
		ExponentialBase:   2.0,
		JitterFactor:      0.1,
		RespectRetryAfter: true,
		TotalTimeout:      30 * time.Second,
	}
}

// Aggressive retries harder and faster, for operations where availability
// matters more than backing off load.
func Aggressive() Policy {
	return Policy{
		MaxRetries:        5,
		InitialDelay:      50 * time.Millisecond,
		MaxDelay:          5 * time.Second,
		ExponentialBase:   1.5,
		JitterFactor:      0.2,
		RespectRetryAfter: true,
		TotalTimeout:      60 * time.Second,
	}
}

// Conservative backs off slower and gives up sooner, to minimize load on
// an already-struggling provider.
func Conservative() Policy {
	return Policy{
		MaxRetries:        2,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          15 * time.Second,
		ExponentialBase:   3.0,
		JitterFactor:      0.3,
		RespectRetryAfter: true,
		TotalTimeout:      20 * time.Second,
	}
}

// NoRetry disables retrying entirely; the first failure is terminal.
func NoRetry() Policy {
	p := Default()
	p.MaxRetries = 0

	return p
}

// CalculateDelay computes the delay before retry attempt k (0-based) given
// the error that triggered it (spec §4.6, §8 invariants 5/6).
func (p Policy) CalculateDelay(attempt uint32, err *gatewayerrors.Error) time.Duration {
	if p.RespectRetryAfter {
		if d := err.RetryDelay(); d != nil {
			return *d
		}
	}

	base := float64(p.InitialDelay) * pow(p.ExponentialBase, attempt)
	capped := base

	if maxDelay := float64(p.MaxDelay); capped > maxDelay {
		capped = maxDelay
	}

	if p.JitterFactor <= 0 {
		return time.Duration(capped)
	}

	jitterRange := capped * p.JitterFactor
	jitter := (rand.Float64()*2 - 1) * jitterRange

	delay := capped + jitter
	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// ShouldRetry reports whether another attempt should be made for this
// error at this attempt count.
func (p Policy) ShouldRetry(err *gatewayerrors.Error, attempt uint32) bool {
	if attempt >= p.MaxRetries {
		return false
	}

	return err.IsRetryable()
}

func pow(base float64, exp uint32) float64 {
	result := 1.0
	for i := uint32(0); i < exp; i++ {
		result *= base
	}

	return result
}
