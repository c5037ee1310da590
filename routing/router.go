// Package routing drives the transform+HTTP pipeline against a primary
// provider and an ordered list of fallbacks, applying a retry policy per
// candidate (spec §4.5).
package routing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/relaymesh/llmgateway/gatewayerrors"
	"github.com/relaymesh/llmgateway/log"
	"github.com/relaymesh/llmgateway/protocol"
	"github.com/relaymesh/llmgateway/providers"
	"github.com/relaymesh/llmgateway/reqcontext"
	"github.com/relaymesh/llmgateway/retry"
	"github.com/relaymesh/llmgateway/streams"
)

var tracer = otel.Tracer("github.com/relaymesh/llmgateway/routing")

// Attempt is what the router actually drives per candidate provider: send
// the (already-adapted) request and return a canonical response or a
// classified error. Callers supply this so the router stays independent
// of the HTTP executor's concrete type.
type Attempt func(ctx context.Context, adapter providers.Adapter, req *protocol.Request) (*protocol.Response, *gatewayerrors.Error)

// Result is the outcome of one routing invocation, including the metadata
// contract spec §4.5 requires of callers that need routing observability.
type Result struct {
	Response       *protocol.Response
	ProviderUsed   string
	UsedFallback   bool
	Attempts       int
	RetryDelayMS   int64
	ProviderErrors map[string]string
	Metadata       map[string]any
}

// Router holds an ordered primary+fallback provider list and the retry
// policy applied to each candidate.
type Router struct {
	primary   providers.Adapter
	fallbacks []providers.Adapter
	policy    retry.Policy
	attempt   Attempt
	logger    *log.Logger
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithLogger attaches a Logger that Route reports each candidate attempt
// through. Defaults to a no-op Logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// New builds a Router. Construct a fresh Router per configuration change
// rather than mutating one (spec §5's ownership model).
func New(primary providers.Adapter, fallbacks []providers.Adapter, policy retry.Policy, attempt Attempt, opts ...Option) *Router {
	r := &Router{primary: primary, fallbacks: fallbacks, policy: policy, attempt: attempt, logger: log.NewNop()}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Route drives req through the primary, then fallbacks in configured
// order, per the deterministic algorithm in spec §4.5.
func (r *Router) Route(ctx context.Context, req *protocol.Request) (Result, *gatewayerrors.Error) {
	ctx, span := tracer.Start(ctx, "routing.Route")
	defer span.End()

	ctx = reqcontext.WithRequestID(ctx, req.RequestID)
	ctx = reqcontext.WithOperationName(ctx, "routing.Route")

	result := Result{
		ProviderErrors: map[string]string{},
		Metadata:       map[string]any{},
	}

	candidates := append([]providers.Adapter{r.primary}, r.fallbacks...)

	var lastErr *gatewayerrors.Error

	for idx, candidate := range candidates {
		span.SetAttributes(attribute.String("routing.candidate", candidate.Name()))
		r.logger.Debug(ctx, "routing candidate", log.Any("provider", candidate.Name()), log.Any("is_fallback", idx > 0))

		executor := retry.NewExecutor(r.policy)

		outcome := retry.Execute(ctx, executor, func(ctx context.Context) (*protocol.Response, *gatewayerrors.Error) {
			return r.attempt(ctx, candidate, req)
		})

		result.Attempts += int(outcome.Attempts) + 1
		result.RetryDelayMS += outcome.TotalDelay.Milliseconds()

		if outcome.Ok {
			result.Response = outcome.Value
			result.ProviderUsed = candidate.Name()
			result.UsedFallback = idx > 0

			result.Metadata["primary_provider"] = r.primary.Name()
			result.Metadata["fallback_used"] = result.UsedFallback
			result.Metadata["attempts"] = result.Attempts
			result.Metadata["retry_delay_ms"] = result.RetryDelayMS

			if result.UsedFallback {
				result.Metadata["fallback_provider"] = candidate.Name()
				result.Metadata["fallback_index"] = idx - 1
				result.Metadata["provider_errors"] = result.ProviderErrors
			}

			r.logger.Debug(ctx, "routing succeeded", log.Any("provider", candidate.Name()), log.Any("attempts", result.Attempts))

			return result, nil
		}

		lastErr = outcome.FinalError
		result.ProviderErrors[candidate.Name()] = lastErr.Error()
		r.logger.Error(ctx, "routing candidate failed", log.Any("provider", candidate.Name()), log.Cause(lastErr))

		// A non-retryable failure on the primary surfaces to the caller
		// immediately. On a fallback it only ends that candidate, since it
		// may not apply to the next one. Retryable failures (including
		// model_not_available, which already used up this candidate's
		// retry budget above) move on to the next candidate as well.
		if !lastErr.IsRetryable() && idx == 0 {
			return Result{}, lastErr
		}
	}

	return Result{}, gatewayerrors.AllProvidersFailed(req.RequestID, result.ProviderErrors)
}

// RouteStream is the reserved streaming counterpart to Route (spec §9):
// the signature type-checks against the full canonical data model
// (protocol.Delta), but no adapter emits a streaming response yet.
func (r *Router) RouteStream(ctx context.Context, req *protocol.Request) (streams.Stream[*protocol.Delta], *gatewayerrors.Error) {
	return nil, gatewayerrors.ErrStreamingNotImplemented(req.RequestID)
}
