package log

import (
	"context"

	"go.uber.org/zap"

	"github.com/relaymesh/llmgateway/reqcontext"
)

// Hook derives extra structured fields from a context for every log line
// written through a Logger built with WithHooks.
type Hook interface {
	Apply(ctx context.Context, msg string) []zap.Field
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(ctx context.Context, msg string) []zap.Field

// Apply calls the wrapped function.
func (f HookFunc) Apply(ctx context.Context, msg string) []zap.Field {
	return f(ctx, msg)
}

// traceFields attaches trace_id, operation_name and request_id when present
// on ctx. A nil ctx, or one carrying none of these values, contributes no
// fields.
func traceFields(ctx context.Context, _ string) []zap.Field {
	if ctx == nil {
		return nil
	}

	var fields []zap.Field

	if traceID, ok := reqcontext.GetTraceID(ctx); ok {
		fields = append(fields, zap.String("trace_id", traceID))
	}

	if operationName, ok := reqcontext.GetOperationName(ctx); ok {
		fields = append(fields, zap.String("operation_name", operationName))
	}

	if requestID, ok := reqcontext.GetRequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}

	return fields
}

// defaultHooks are applied by every Logger returned by New.
var defaultHooks = []Hook{HookFunc(traceFields)}
