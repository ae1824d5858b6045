package core

import (
	"context"
	"errors"
	"log/slog"
)

// LogDebug logs a debug-level message with context metadata.
//
// Automatically appends trace_id and request_id from context if present.
// Checks if debug level is enabled before building the log message.
//
// Example:
//
//	core.LogDebug(ctx, "converted tool", "name", name, "path", "native")
func LogDebug(ctx context.Context, msg string, args ...any) {
	logAt(ctx, slog.LevelDebug, msg, args)
}

// LogInfo logs an info-level message with context metadata.
func LogInfo(ctx context.Context, msg string, args ...any) {
	logAt(ctx, slog.LevelInfo, msg, args)
}

// LogWarn logs a warning-level message with context metadata.
func LogWarn(ctx context.Context, msg string, args ...any) {
	logAt(ctx, slog.LevelWarn, msg, args)
}

// LogError logs an error-level message with context metadata.
//
// If err is a *Error its attributes are included; otherwise err is added under "error".
func LogError(ctx context.Context, msg string, err error, args ...any) {
	logger := Logger(ctx)
	if !logger.Enabled(ctx, slog.LevelError) {
		return
	}
	args = appendContextFields(ctx, args)
	var cerr *Error
	switch {
	case err == nil:
	case errors.As(err, &cerr):
		args = append(args, "error", err.Error())
		for _, attr := range cerr.Attrs() {
			args = append(args, attr)
		}
	default:
		args = append(args, "error", err)
	}
	logger.ErrorContext(ctx, msg, args...)
}

// LogAttr logs with slog.Attr for structured logging.
//
// Automatically appends trace_id and request_id as attributes.
func LogAttr(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	logger := Logger(ctx)
	if !logger.Enabled(ctx, level) {
		return
	}
	if traceID := TraceID(ctx); traceID != "" {
		attrs = append(attrs, slog.String("trace_id", traceID))
	}
	if requestID := RequestID(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}

// LogWith returns a logger with pre-attached context fields.
//
// Example:
//
//	log := core.LogWith(ctx, "component", "formatter")
//	log.Debug("converting", "count", len(list))
func LogWith(ctx context.Context, args ...any) *slog.Logger {
	return Logger(ctx).With(appendContextFields(ctx, args)...)
}

func logAt(ctx context.Context, level slog.Level, msg string, args []any) {
	logger := Logger(ctx)
	if !logger.Enabled(ctx, level) {
		return
	}
	logger.Log(ctx, level, msg, appendContextFields(ctx, args)...)
}

// appendContextFields adds trace_id and request_id to args if present in context.
func appendContextFields(ctx context.Context, args []any) []any {
	if traceID := TraceID(ctx); traceID != "" {
		args = append(args, "trace_id", traceID)
	}
	if requestID := RequestID(ctx); requestID != "" {
		args = append(args, "request_id", requestID)
	}
	return args
}
