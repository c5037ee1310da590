// Package log wraps zap with hooks that enrich every line with
// request-scoped fields (trace id, request id, operation name) pulled
// from context, so call sites never have to thread them through by hand.
package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a context-aware structured logger.
type Logger struct {
	base  *zap.Logger
	hooks []Hook
}

// New builds a Logger around base, applying the default context hooks.
func New(base *zap.Logger, hooks ...Hook) *Logger {
	if len(hooks) == 0 {
		hooks = defaultHooks
	}

	return &Logger{base: base, hooks: hooks}
}

// NewProduction builds a Logger with zap's production JSON encoder
// configuration, matching what a deployed gateway instance runs with.
func NewProduction() (*Logger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return New(base), nil
}

// NewDevelopment builds a Logger with zap's human-readable console
// encoder, for local development.
func NewDevelopment() (*Logger, error) {
	base, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return New(base), nil
}

// NewNop builds a Logger that discards everything, for components that
// don't have a Logger configured explicitly.
func NewNop() *Logger {
	return New(zap.NewNop())
}

func (l *Logger) fields(ctx context.Context, msg string, extra []zap.Field) []zap.Field {
	fields := make([]zap.Field, 0, len(extra)+len(l.hooks))
	fields = append(fields, extra...)

	for _, hook := range l.hooks {
		fields = append(fields, hook.Apply(ctx, msg)...)
	}

	return fields
}

// Debug logs at debug level with context-derived fields attached.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Debug(msg, l.fields(ctx, msg, fields)...)
}

// Info logs at info level with context-derived fields attached.
func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Info(msg, l.fields(ctx, msg, fields)...)
}

// Warn logs at warn level with context-derived fields attached.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Warn(msg, l.fields(ctx, msg, fields)...)
}

// Error logs at error level with context-derived fields attached.
func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Error(msg, l.fields(ctx, msg, fields)...)
}

// With returns a Logger whose base carries the given fields on every
// subsequent call, independent of context-derived fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{base: l.base.With(fields...), hooks: l.hooks}
}

// DebugEnabled reports whether l would actually emit a Debug call, so a
// caller can skip building expensive fields when it wouldn't.
func (l *Logger) DebugEnabled(ctx context.Context) bool {
	return l.base.Core().Enabled(zapcore.DebugLevel)
}

// Cause wraps err under the conventional "error" field key.
func Cause(err error) zap.Field {
	return zap.Error(err)
}

// Any is a convenience re-export of zap.Any for call sites that only
// import this package.
func Any(key string, value any) zap.Field {
	return zap.Any(key, value)
}

// Core exposes the underlying zapcore.Core, for callers wiring in
// additional sinks (e.g. an audit-log core) alongside the default one.
func (l *Logger) Core() zapcore.Core {
	return l.base.Core()
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
