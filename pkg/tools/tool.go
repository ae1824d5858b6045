// Package tools describes the tools an LLM request can bind.
//
// A tool reaches the formatter as an Input, which is exactly one of:
//   - Native: an OpenAI function tool definition, used as-is
//   - Structured: a name, a description and a parameter schema in any schema dialect
//
// Constructors cover the places tools usually come from: hand-written schemas,
// reflected Go structs, MCP servers, Ollama and Gemini declarations, and tool documents
// in JSON or YAML (see Parse).
package tools

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared/constant"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Input is a tool to be converted into the OpenAI function tool format.
//
// The interface is sealed: only Native and Structured (and pointers to them) implement it.
type Input interface {
	isInput()
}

// Native is a tool already in the OpenAI function tool wire format.
type Native struct {
	Definition openai.ChatCompletionFunctionToolParam
}

// Structured is a provider-agnostic tool: name, description and parameter schema.
//
// Schema may be in any dialect understood by the schema package: an invopop
// *jsonschema.Schema, a google or swaggest schema, a map, JSON or YAML text, or nil
// when the tool takes no parameters.
type Structured struct {
	Name        string
	Description string
	Schema      any
}

func (Native) isInput()     {}
func (Structured) isInput() {}

// Tool is implemented by types that describe themselves as a structured tool.
type Tool interface {
	Name() string          // Function name (e.g., "get_current_weather")
	Description() string   // What the function does
	ParametersSchema() any // Parameter schema in any supported dialect
}

// New creates a structured tool with full control over name, description and schema.
//
// Example:
//
//	props := orderedmap.New[string, *jsonschema.Schema]()
//	props.Set("query", &jsonschema.Schema{Type: "string", Description: "Search query"})
//	search := tools.New("web_search", "Search the web for current information",
//	    &jsonschema.Schema{Type: "object", Properties: props, Required: []string{"query"}})
func New(name, description string, schema any) Structured {
	return Structured{Name: name, Description: description, Schema: schema}
}

// Simple creates a structured tool taking a single string "input" parameter.
//
// Example:
//
//	calc := tools.Simple("calculator", "Evaluate mathematical expressions")
func Simple(name, description string) Structured {
	properties := orderedmap.New[string, *jsonschema.Schema]()
	properties.Set("input", &jsonschema.Schema{
		Type:        "string",
		Description: "Input for the " + name + " tool",
	})

	return New(name, description, &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   []string{"input"},
	})
}

// Reflect creates a structured tool whose parameters are generated from the Go type T.
//
// Fields are described with `json` and `jsonschema` struct tags. The schema forbids
// additional properties and inlines nested types instead of using references.
//
// Example:
//
//	type WeatherArgs struct {
//	    City string `json:"city" jsonschema:"description=City name"`
//	}
//	weather := tools.Reflect[WeatherArgs]("get_weather", "Fetch the current weather")
func Reflect[T any](name, description string) Structured {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf((*T)(nil)).Elem())
	return New(name, description, schema)
}

// FromTool converts a Tool implementation into a structured tool.
func FromTool(t Tool) Structured {
	return New(t.Name(), t.Description(), t.ParametersSchema())
}

// FromDefinition wraps an OpenAI function tool definition.
func FromDefinition(def openai.ChatCompletionFunctionToolParam) Native {
	return Native{Definition: def}
}

// FromFunction wraps an OpenAI function definition as a native function tool.
func FromFunction(fn openai.FunctionDefinitionParam) Native {
	return FromDefinition(openai.ChatCompletionFunctionToolParam{
		Function: fn,
		Type:     constant.Function("").Default(),
	})
}

// Name returns the function name of any input, or "" for nil.
func Name(in Input) string {
	switch t := in.(type) {
	case Native:
		return t.Definition.Function.Name
	case *Native:
		if t != nil {
			return t.Definition.Function.Name
		}
	case Structured:
		return t.Name
	case *Structured:
		if t != nil {
			return t.Name
		}
	}
	return ""
}
