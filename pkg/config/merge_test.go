package config

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/calque-ai/toolbind/pkg/helpers"
)

type testConfig struct {
	Strict        *bool
	StrictSchemas bool
	Logger        *slog.Logger
	Tags          []string
	Extra         map[string]any
	hidden        string
}

type narrowConfig struct {
	Strict *bool
	Tags   string // type differs from testConfig.Tags
}

func TestMerge(t *testing.T) {
	logger := slog.Default()

	tests := []struct {
		name     string
		target   *testConfig
		source   *testConfig
		expected *testConfig
	}{
		{
			name:     "partial override",
			target:   &testConfig{Strict: helpers.PtrOf(false), StrictSchemas: true, Tags: []string{"a"}},
			source:   &testConfig{Strict: helpers.PtrOf(true)},
			expected: &testConfig{Strict: helpers.PtrOf(true), StrictSchemas: true, Tags: []string{"a"}},
		},
		{
			name:     "explicit false pointer overrides",
			target:   &testConfig{Strict: helpers.PtrOf(true)},
			source:   &testConfig{Strict: helpers.PtrOf(false)},
			expected: &testConfig{Strict: helpers.PtrOf(false)},
		},
		{
			name:     "empty collections are unset",
			target:   &testConfig{Tags: []string{"a"}, Extra: map[string]any{"k": 1}},
			source:   &testConfig{Tags: []string{}, Extra: map[string]any{}},
			expected: &testConfig{Tags: []string{"a"}, Extra: map[string]any{"k": 1}},
		},
		{
			name:     "logger and bool",
			target:   &testConfig{},
			source:   &testConfig{Logger: logger, StrictSchemas: true},
			expected: &testConfig{Logger: logger, StrictSchemas: true},
		},
		{
			name:     "unexported fields ignored",
			target:   &testConfig{hidden: "keep"},
			source:   &testConfig{hidden: "drop"},
			expected: &testConfig{hidden: "keep"},
		},
		{
			name:     "nil source",
			target:   &testConfig{StrictSchemas: true},
			source:   nil,
			expected: &testConfig{StrictSchemas: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Merge(tt.target, tt.source)
			if !reflect.DeepEqual(tt.target, tt.expected) {
				t.Errorf("Merge() = %+v, want %+v", tt.target, tt.expected)
			}
		})
	}
}

func TestMerge_DifferentTypes(t *testing.T) {
	target := &testConfig{Tags: []string{"a"}}
	Merge(target, &narrowConfig{Strict: helpers.PtrOf(true), Tags: "ignored"})

	if target.Strict == nil || !*target.Strict {
		t.Errorf("Strict = %v, want pointer to true", target.Strict)
	}
	if !reflect.DeepEqual(target.Tags, []string{"a"}) {
		t.Errorf("Tags = %v, mismatched field types must not be copied", target.Tags)
	}
}

func TestMerge_NonStruct(t *testing.T) {
	target := 1
	source := 2
	Merge(&target, &source)
	if target != 1 {
		t.Errorf("Merge on non-struct changed target to %d", target)
	}
}
