package schema

import (
	"reflect"
	"testing"
)

func TestStrictify(t *testing.T) {
	input := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"unit": map[string]any{"type": "string"},
			"city": map[string]any{"type": "string"},
			"mode": map[string]any{"type": "string", "enum": []any{"fast", "slow"}},
			"home": map[string]any{"$ref": "#/$defs/Place"},
			"stops": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": map[string]any{"name": map[string]any{"type": "string"}},
					"required":   []any{"name"},
				},
			},
			"when": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "object", "properties": map[string]any{}},
				},
			},
		},
		"required": []any{"city"},
		"$defs": map[string]any{
			"Place": map[string]any{"properties": map[string]any{"id": map[string]any{"type": "integer"}}},
		},
	}

	want := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"unit": map[string]any{"type": []any{"string", "null"}},
			"city": map[string]any{"type": "string"},
			"mode": map[string]any{"type": []any{"string", "null"}, "enum": []any{"fast", "slow", nil}},
			"home": map[string]any{
				"anyOf": []any{
					map[string]any{"$ref": "#/$defs/Place"},
					map[string]any{"type": "null"},
				},
			},
			"stops": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"name"},
					"properties":           map[string]any{"name": map[string]any{"type": "string"}},
				},
			},
			"when": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"required":             []any{},
						"properties":           map[string]any{},
					},
					map[string]any{"type": "null"},
				},
			},
		},
		"required": []any{"city", "home", "mode", "stops", "unit", "when"},
		"$defs": map[string]any{
			"Place": map[string]any{
				"additionalProperties": false,
				"required":             []any{"id"},
				"properties":           map[string]any{"id": map[string]any{"type": []any{"integer", "null"}}},
			},
		},
	}

	got := Strictify(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strictify() =\n%#v\nwant\n%#v", got, want)
	}
}

func TestStrictify_Nullable(t *testing.T) {
	tests := []struct {
		name string
		prop map[string]any
		want map[string]any
	}{
		{
			name: "type union",
			prop: map[string]any{"type": []any{"integer", "string"}},
			want: map[string]any{"type": []any{"integer", "string", "null"}},
		},
		{
			name: "already nullable union",
			prop: map[string]any{"type": []any{"string", "null"}},
			want: map[string]any{"type": []any{"string", "null"}},
		},
		{
			name: "null type",
			prop: map[string]any{"type": "null"},
			want: map[string]any{"type": "null"},
		},
		{
			name: "anyOf with null branch",
			prop: map[string]any{"anyOf": []any{map[string]any{"type": "string"}, map[string]any{"type": "null"}}},
			want: map[string]any{"anyOf": []any{map[string]any{"type": "string"}, map[string]any{"type": "null"}}},
		},
		{
			name: "described oneOf",
			prop: map[string]any{"description": "d", "oneOf": []any{map[string]any{"type": "string"}}},
			want: map[string]any{
				"anyOf": []any{
					map[string]any{"description": "d", "oneOf": []any{map[string]any{"type": "string"}}},
					map[string]any{"type": "null"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strictify(map[string]any{
				"type":       "object",
				"properties": map[string]any{"opt": tt.prop},
			})
			props := got["properties"].(map[string]any)
			if !reflect.DeepEqual(props["opt"], tt.want) {
				t.Errorf("opt = %#v, want %#v", props["opt"], tt.want)
			}
			if !reflect.DeepEqual(got["required"], []any{"opt"}) {
				t.Errorf("required = %v, want [opt]", got["required"])
			}
		})
	}
}
