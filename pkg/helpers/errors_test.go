package helpers

import (
	"errors"
	"testing"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		expected string
		isNil    bool
	}{
		{
			name:     "wrap non-nil error",
			err:      errors.New("unexpected EOF"),
			message:  "failed to read tool document",
			expected: "failed to read tool document: unexpected EOF",
		},
		{
			name:    "wrap nil error",
			err:     nil,
			message: "failed to read tool document",
			isNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := WrapError(tt.err, tt.message)

			if tt.isNil {
				if result != nil {
					t.Errorf("WrapError() = %v, want nil", result)
				}
				return
			}

			if result == nil {
				t.Fatal("WrapError() = nil, want non-nil error")
			}
			if result.Error() != tt.expected {
				t.Errorf("WrapError() = %q, want %q", result.Error(), tt.expected)
			}
			if !errors.Is(result, tt.err) {
				t.Error("WrapError() should preserve original error for errors.Is()")
			}
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		args     []any
		expected string
		isNil    bool
	}{
		{
			name:     "formatted prefix",
			err:      errors.New("no such file"),
			format:   "%s",
			args:     []any{"tools.yaml"},
			expected: "tools.yaml: no such file",
		},
		{
			name:     "multiple args",
			err:      errors.New("invalid schema"),
			format:   "tool %d (%s)",
			args:     []any{2, "get_weather"},
			expected: "tool 2 (get_weather): invalid schema",
		},
		{
			name:     "no args",
			err:      errors.New("closed"),
			format:   "write output",
			expected: "write output: closed",
		},
		{
			name:   "nil error",
			err:    nil,
			format: "tool %d",
			args:   []any{0},
			isNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := WrapErrorf(tt.err, tt.format, tt.args...)

			if tt.isNil {
				if result != nil {
					t.Errorf("WrapErrorf() = %v, want nil", result)
				}
				return
			}

			if result == nil {
				t.Fatal("WrapErrorf() = nil, want non-nil error")
			}
			if result.Error() != tt.expected {
				t.Errorf("WrapErrorf() = %q, want %q", result.Error(), tt.expected)
			}
			if !errors.Is(result, tt.err) {
				t.Error("WrapErrorf() should preserve original error for errors.Is()")
			}
		})
	}
}
