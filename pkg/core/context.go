// Package core carries the request-scoped metadata shared by the toolbind packages:
// the context logger, trace and request identifiers, and the context-aware error type.
//
// Conversions are pure, so nothing here mutates shared state. The context only
// transports the logger and identifiers used when reporting what happened.
package core

import (
	"context"
	"log/slog"
)

type ctxKey string

const (
	loggerKey    ctxKey = "toolbind.logger"
	traceIDKey   ctxKey = "toolbind.trace_id"
	requestIDKey ctxKey = "toolbind.request_id"
)

// WithLogger stores a slog.Logger in the context.
//
// Example:
//
//	ctx = core.WithLogger(ctx, slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger retrieves the slog.Logger from context.
//
// Returns slog.Default() if no logger is found in context.
func Logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// HasLogger reports whether ctx carries a logger set with WithLogger.
func HasLogger(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	return ok && logger != nil
}

// WithTraceID stores a trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID retrieves the trace ID from context, or "" if none is set.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID stores a request ID in the context.
//
// Example:
//
//	ctx = core.WithRequestID(ctx, uuid.NewString())
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID retrieves the request ID from context, or "" if none is set.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
