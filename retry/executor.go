package retry

import (
	"context"
	"time"

	"github.com/relaymesh/llmgateway/gatewayerrors"
)

// Result is the observability contract the retry executor reports: the
// final outcome, the number of retries made after the first call
// (Attempts, 0 when the first call settles it), cumulative delay, and
// ordered error history (spec §4.6).
type Result[T any] struct {
	Value        T
	Ok           bool
	Attempts     uint32
	TotalDelay   time.Duration
	FinalError   *gatewayerrors.Error
	ErrorHistory []*gatewayerrors.Error
}

// Operation is one attempt against a provider; it returns a typed result
// or a classified gateway error.
type Operation[T any] func(ctx context.Context) (T, *gatewayerrors.Error)

// Executor drives an Operation through a Policy's retry schedule.
type Executor struct {
	policy Policy
}

// NewExecutor builds an Executor bound to the given policy.
func NewExecutor(policy Policy) *Executor {
	return &Executor{policy: policy}
}

// Execute runs op, retrying per the bound policy until it succeeds, the
// policy gives up, or the total-timeout budget is exhausted.
func Execute[T any](ctx context.Context, e *Executor, op Operation[T]) Result[T] {
	var (
		attempt    uint32
		totalDelay time.Duration
		history    []*gatewayerrors.Error
	)

	start := time.Now()

	for {
		value, err := op(ctx)
		if err == nil {
			return Result[T]{Value: value, Ok: true, Attempts: attempt, TotalDelay: totalDelay, ErrorHistory: history}
		}

		history = append(history, err)

		if !e.policy.ShouldRetry(err, attempt) {
			return Result[T]{Ok: false, Attempts: attempt, TotalDelay: totalDelay, FinalError: err, ErrorHistory: history}
		}

		if e.policy.TotalTimeout > 0 && time.Since(start) > e.policy.TotalTimeout {
			timeout := gatewayerrors.Timeout(err.RequestID)
			return Result[T]{Ok: false, Attempts: attempt, TotalDelay: totalDelay, FinalError: timeout, ErrorHistory: history}
		}

		delay := e.policy.CalculateDelay(attempt, err)
		totalDelay += delay

		select {
		case <-ctx.Done():
			return Result[T]{Ok: false, Attempts: attempt, TotalDelay: totalDelay, FinalError: err, ErrorHistory: history}
		case <-time.After(delay):
		}

		attempt++
	}
}
