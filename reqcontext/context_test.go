package reqcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTraceID(t *testing.T) {
	ctx := context.Background()
	traceID := "trace-123"

	newCtx := WithTraceID(ctx, traceID)
	assert.NotEqual(t, ctx, newCtx)

	retrieved, ok := GetTraceID(newCtx)
	assert.True(t, ok)
	assert.Equal(t, traceID, retrieved)
}

func TestGetTraceIDMissing(t *testing.T) {
	traceID, ok := GetTraceID(context.Background())
	assert.False(t, ok)
	assert.Empty(t, traceID)
}

func TestWithOperationName(t *testing.T) {
	ctx := context.Background()
	name := "routing.Route"

	newCtx := WithOperationName(ctx, name)

	retrieved, ok := GetOperationName(newCtx)
	assert.True(t, ok)
	assert.Equal(t, name, retrieved)
}

func TestWithRequestIDSurvivesFurtherDerivation(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithOperationName(ctx, "httpclient.Execute")

	requestID, ok := GetRequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", requestID)

	operationName, ok := GetOperationName(ctx)
	assert.True(t, ok)
	assert.Equal(t, "httpclient.Execute", operationName)
}

func TestIndependentContextsDoNotLeak(t *testing.T) {
	ctx1 := WithTraceID(context.Background(), "trace-1")
	ctx2 := WithTraceID(context.Background(), "trace-2")

	trace1, _ := GetTraceID(ctx1)
	trace2, _ := GetTraceID(ctx2)

	assert.Equal(t, "trace-1", trace1)
	assert.Equal(t, "trace-2", trace2)
}
