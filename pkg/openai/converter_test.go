package openai

import (
	"context"
	"errors"
	"reflect"
	"testing"

	gjsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/schema"
	"github.com/calque-ai/toolbind/pkg/tools"
)

func citySchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("city", &jsonschema.Schema{Type: "string"})
	return &jsonschema.Schema{Type: "object", Properties: props, Required: []string{"city"}}
}

func cityParams() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{"type": "string"},
		},
		"required": []any{"city"},
	}
}

func params(def openai.ChatCompletionFunctionToolParam) map[string]any {
	return map[string]any(def.Function.Parameters)
}

func TestNativeConverter(t *testing.T) {
	ctx := context.Background()
	tool := tools.New("get_weather", "Get weather", citySchema())

	t.Run("plain", func(t *testing.T) {
		def, err := NativeConverter{}.Convert(ctx, tool)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if def.Function.Name != "get_weather" || def.Function.Description.Value != "Get weather" {
			t.Errorf("name/description = %q/%q", def.Function.Name, def.Function.Description.Value)
		}
		if string(def.Type) != "function" {
			t.Errorf("Type = %q, want function", def.Type)
		}
		if !reflect.DeepEqual(params(def), cityParams()) {
			t.Errorf("Parameters = %#v, want %#v", params(def), cityParams())
		}
		if def.Function.Strict.Valid() {
			t.Errorf("Strict = %v, want absent", def.Function.Strict.Value)
		}
	})

	t.Run("strict schemas", func(t *testing.T) {
		def, err := NativeConverter{Strict: true}.Convert(ctx, tool)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if !def.Function.Strict.Valid() || !def.Function.Strict.Value {
			t.Error("Strict should be true")
		}
		if got := params(def)["additionalProperties"]; got != false {
			t.Errorf("additionalProperties = %v, want false", got)
		}
	})

	t.Run("schema value", func(t *testing.T) {
		def, err := NativeConverter{}.Convert(ctx, tools.New("get_weather", "", *citySchema()))
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if !reflect.DeepEqual(params(def), cityParams()) {
			t.Errorf("Parameters = %#v, want %#v", params(def), cityParams())
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		s := citySchema()
		if _, err := (NativeConverter{Strict: true}).Convert(ctx, tools.New("get_weather", "", s)); err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if s.AdditionalProperties != nil {
			t.Error("input schema was modified")
		}
	})

	t.Run("wrong dialect", func(t *testing.T) {
		_, err := NativeConverter{}.Convert(ctx, tools.New("x", "", map[string]any{}))
		if !errors.Is(err, core.ErrInvalidSchema) {
			t.Errorf("error = %v, want ErrInvalidSchema", err)
		}
	})

	t.Run("non-object root", func(t *testing.T) {
		_, err := NativeConverter{}.Convert(ctx, tools.New("x", "", &jsonschema.Schema{Type: "string"}))
		if !errors.Is(err, core.ErrInvalidSchema) || !errors.Is(err, schema.ErrNotObject) {
			t.Errorf("error = %v, want ErrInvalidSchema wrapping ErrNotObject", err)
		}
	})
}

func TestGenericConverter(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		schema any
		want   map[string]any
	}{
		{
			name: "google schema",
			schema: &gjsonschema.Schema{
				Type:       "object",
				Properties: map[string]*gjsonschema.Schema{"city": {Type: "string"}},
				Required:   []string{"city"},
			},
			want: cityParams(),
		},
		{
			name:   "map",
			schema: cityParams(),
			want:   cityParams(),
		},
		{
			name:   "json text",
			schema: `{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`,
			want:   cityParams(),
		},
		{
			name:   "yaml text",
			schema: "type: object\nproperties:\n  city:\n    type: string\nrequired: [city]\n",
			want:   cityParams(),
		},
		{
			name:   "no schema",
			schema: nil,
			want:   map[string]any{"type": "object", "properties": map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := GenericConverter{}.Convert(ctx, tools.New("get_weather", "Get weather", tt.schema))
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !reflect.DeepEqual(params(def), tt.want) {
				t.Errorf("Parameters = %#v, want %#v", params(def), tt.want)
			}
			if def.Function.Strict.Valid() {
				t.Error("generic converter must not set strict")
			}
			if def.Function.Name != "get_weather" || def.Function.Description.Value != "Get weather" {
				t.Errorf("name/description = %q/%q", def.Function.Name, def.Function.Description.Value)
			}
		})
	}
}

func TestGenericConverter_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema any
	}{
		{"array text", "[1, 2]"},
		{"scalar root", map[string]any{"type": "string"}},
		{"unmarshalable", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenericConverter{}.Convert(context.Background(), tools.New("bad", "", tt.schema))
			if !errors.Is(err, core.ErrInvalidSchema) {
				t.Errorf("error = %v, want ErrInvalidSchema", err)
			}
		})
	}
}

func TestConverterFunc(t *testing.T) {
	var got tools.Structured
	c := ConverterFunc(func(_ context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error) {
		got = tool
		return openai.ChatCompletionFunctionToolParam{}, nil
	})

	tool := tools.New("x", "y", nil)
	if _, err := c.Convert(context.Background(), tool); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !reflect.DeepEqual(got, tool) {
		t.Errorf("ConverterFunc received %+v, want %+v", got, tool)
	}
}
