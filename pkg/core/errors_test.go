package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapErr(t *testing.T) {
	ctx := context.Background()
	ctx = WithTraceID(ctx, "trace-wrap")
	ctx = WithRequestID(ctx, "req-wrap")
	originalErr := errors.New("unexpected end of JSON input")

	err := WrapErr(ctx, originalErr, "failed to decode schema")

	if err.Message() != "failed to decode schema" {
		t.Errorf("Message() = %q, want %q", err.Message(), "failed to decode schema")
	}
	if err.Cause() != originalErr {
		t.Error("Cause() did not return original error")
	}
	if errors.Unwrap(err) != originalErr {
		t.Error("Unwrap() did not return original error")
	}
	if err.TraceID() != "trace-wrap" {
		t.Errorf("TraceID() = %q, want %q", err.TraceID(), "trace-wrap")
	}
	if err.RequestID() != "req-wrap" {
		t.Errorf("RequestID() = %q, want %q", err.RequestID(), "req-wrap")
	}
}

func TestError_Kind(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    error
		notKind error
		wantMsg string
	}{
		{
			name:    "invalid tool without cause",
			err:     NewErr(context.Background(), "tool name is required").Kind(ErrInvalidTool),
			kind:    ErrInvalidTool,
			notKind: ErrInvalidSchema,
			wantMsg: "invalid tool: tool name is required",
		},
		{
			name:    "invalid schema with cause",
			err:     WrapErr(context.Background(), errors.New("boom"), "failed to marshal schema").Kind(ErrInvalidSchema),
			kind:    ErrInvalidSchema,
			notKind: ErrInvalidTool,
			wantMsg: "invalid schema: failed to marshal schema: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
			if errors.Is(tt.err, tt.notKind) {
				t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, tt.notKind)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestError_KindSurvivesWrapping(t *testing.T) {
	inner := NewErr(context.Background(), "empty name").Kind(ErrInvalidTool)
	outer := WrapErr(context.Background(), inner, "tool 3")

	if !errors.Is(outer, ErrInvalidTool) {
		t.Error("errors.Is should find the kind through an outer *Error")
	}

	var target *Error
	if !errors.As(outer, &target) {
		t.Fatal("errors.As should find *Error")
	}
}

func TestError_IsSameMessage(t *testing.T) {
	a := NewErr(context.Background(), "same")
	b := NewErr(context.Background(), "same")
	c := NewErr(context.Background(), "different")

	if !errors.Is(a, b) {
		t.Error("errors with the same message should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different messages should not match")
	}
}

func TestError_LogAttrs(t *testing.T) {
	ctx := WithRequestID(WithTraceID(context.Background(), "t-1"), "r-1")
	err := WrapErr(ctx, errors.New("cause"), "msg").
		Kind(ErrInvalidSchema).
		Tag(slog.String("tool", "get_weather")).
		Tags(slog.Int("index", 2), slog.String("dialect", "generic"))

	attrs := err.LogAttrs()
	keys := make([]string, len(attrs))
	for i, a := range attrs {
		keys[i] = a.Key
	}
	got := strings.Join(keys, ",")
	want := "kind,error,trace_id,request_id,tool,index,dialect"
	if got != want {
		t.Errorf("LogAttrs() keys = %q, want %q", got, want)
	}

	if len(err.Attrs()) != 3 {
		t.Errorf("Attrs() length = %d, want 3", len(err.Attrs()))
	}
}
