// Package reqcontext carries per-request correlation values (trace id,
// request id, operation name) through a context.Context, independent of
// any single call site.
package reqcontext

import (
	"context"
	"sync"
)

type contextKey string

const containerKey contextKey = "reqcontext_container"

// container holds every value reqcontext tracks. It is stored once per
// request and mutated in place so later WithXxx calls on a derived
// context are visible to anyone holding an ancestor context too.
type container struct {
	mu            sync.RWMutex
	traceID       *string
	requestID     *string
	operationName *string
}

func getContainer(ctx context.Context) *container {
	if c, ok := ctx.Value(containerKey).(*container); ok {
		return c
	}

	return &container{}
}

func withContainer(ctx context.Context, c *container) context.Context {
	if ctx.Value(containerKey) == nil {
		return context.WithValue(ctx, containerKey, c)
	}

	return ctx
}

// WithTraceID stores the trace id in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	c := getContainer(ctx)

	c.mu.Lock()
	c.traceID = &traceID
	c.mu.Unlock()

	return withContainer(ctx, c)
}

// GetTraceID retrieves the trace id from the context.
func GetTraceID(ctx context.Context) (string, bool) {
	c := getContainer(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.traceID != nil {
		return *c.traceID, true
	}

	return "", false
}

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	c := getContainer(ctx)

	c.mu.Lock()
	c.requestID = &requestID
	c.mu.Unlock()

	return withContainer(ctx, c)
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(ctx context.Context) (string, bool) {
	c := getContainer(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.requestID != nil {
		return *c.requestID, true
	}

	return "", false
}

// WithOperationName stores the operation name (e.g. "routing.Route",
// "providers.anthropic.EncodeRequest") in the context.
func WithOperationName(ctx context.Context, name string) context.Context {
	c := getContainer(ctx)

	c.mu.Lock()
	c.operationName = &name
	c.mu.Unlock()

	return withContainer(ctx, c)
}

// GetOperationName retrieves the operation name from the context.
func GetOperationName(ctx context.Context) (string, bool) {
	c := getContainer(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.operationName != nil {
		return *c.operationName, true
	}

	return "", false
}
