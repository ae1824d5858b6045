package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Error kinds. Every *Error carries at most one kind, reachable with errors.Is.
var (
	// ErrInvalidTool reports a tool that is neither a usable structured tool nor a
	// native function definition. It signals a configuration mistake in the tool list.
	ErrInvalidTool = errors.New("invalid tool")

	// ErrInvalidSchema reports a parameter schema that a converter could not turn into
	// function parameters.
	ErrInvalidSchema = errors.New("invalid schema")
)

// Error is a context-aware error that carries metadata for logging and tracing.
//
// It implements the standard error interface and supports Go's error wrapping
// (errors.Is, errors.As, errors.Unwrap). Metadata includes trace ID, request ID,
// an optional kind sentinel and arbitrary tags as slog.Attr for structured logging.
//
// Example:
//
//	return core.NewErr(ctx, "tool name is required").
//	    Kind(core.ErrInvalidTool).
//	    Tag(slog.Int("index", i))
type Error struct {
	msg       string
	cause     error
	kind      error
	traceID   string
	requestID string
	attrs     []slog.Attr
}

// WrapErr wraps an existing error with context metadata.
//
// The trace ID and request ID are automatically extracted from context.
//
// Example:
//
//	if err != nil {
//	    return core.WrapErr(ctx, err, "failed to marshal schema").Kind(core.ErrInvalidSchema)
//	}
func WrapErr(ctx context.Context, err error, msg string) *Error {
	return &Error{
		msg:       msg,
		cause:     err,
		traceID:   TraceID(ctx),
		requestID: RequestID(ctx),
		attrs:     make([]slog.Attr, 0),
	}
}

// NewErr creates a new error with context metadata (no underlying cause).
func NewErr(ctx context.Context, msg string) *Error {
	return WrapErr(ctx, nil, msg)
}

// Kind sets the error kind sentinel and returns the error for chaining.
func (e *Error) Kind(kind error) *Error {
	e.kind = kind
	return e
}

// Tag adds a slog.Attr to the error for structured logging.
//
// Returns the error for fluent chaining.
func (e *Error) Tag(attr slog.Attr) *Error {
	e.attrs = append(e.attrs, attr)
	return e
}

// Tags adds multiple slog.Attr to the error.
func (e *Error) Tags(attrs ...slog.Attr) *Error {
	e.attrs = append(e.attrs, attrs...)
	return e
}

// Error implements the error interface.
//
// The kind prefixes the message so "invalid tool: tool name is required" reads
// correctly in a log line without the attributes.
func (e *Error) Error() string {
	msg := e.msg
	if e.kind != nil {
		msg = fmt.Sprintf("%v: %s", e.kind, msg)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// TraceID returns the trace ID associated with this error.
func (e *Error) TraceID() string {
	return e.traceID
}

// RequestID returns the request ID associated with this error.
func (e *Error) RequestID() string {
	return e.requestID
}

// Attrs returns the slog attributes associated with this error.
func (e *Error) Attrs() []slog.Attr {
	return e.attrs
}

// Message returns the error message without kind or cause.
func (e *Error) Message() string {
	return e.msg
}

// Cause returns the underlying error (alias for Unwrap).
func (e *Error) Cause() error {
	return e.cause
}

// LogAttrs returns all attributes including trace_id and request_id.
//
// Example:
//
//	core.LogAttr(ctx, slog.LevelError, "tool binding failed", err.LogAttrs()...)
func (e *Error) LogAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.kind != nil {
		attrs = append(attrs, slog.String("kind", e.kind.Error()))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.Any("error", e.cause))
	}
	if e.traceID != "" {
		attrs = append(attrs, slog.String("trace_id", e.traceID))
	}
	if e.requestID != "" {
		attrs = append(attrs, slog.String("request_id", e.requestID))
	}

	return append(attrs, e.attrs...)
}

// Log logs this error at error level with all metadata.
func (e *Error) Log(ctx context.Context) {
	Logger(ctx).LogAttrs(ctx, slog.LevelError, e.msg, e.LogAttrs()...)
}

// Is implements errors.Is for this error.
//
// Matches the kind sentinel, or another *Error with the same message.
func (e *Error) Is(target error) bool {
	if e.kind != nil && target == e.kind {
		return true
	}
	if t, ok := target.(*Error); ok {
		return e.msg == t.msg
	}
	return false
}
