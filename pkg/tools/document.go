package tools

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/hbollon/go-edlib"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared/constant"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/helpers"
)

// keys a structured tool document may carry its schema under, in lookup order
var schemaKeys = []string{"parameters", "schema", "input_schema", "inputSchema"}

// every key a tool document is expected to use, for spelling hints
var knownKeys = []string{"type", "function", "name", "description", "strict", "parameters", "schema", "input_schema", "inputSchema", "tools"}

// minimum Jaro-Winkler similarity for a key to be reported as a likely misspelling
const hintSimilarity = 0.85

// Parse reads tool documents from JSON or YAML.
//
// The document may be a single tool, a list of tools, or an object with a "tools" list.
// Each tool is either native:
//
//	type: function
//	function:
//	  name: get_weather
//	  parameters: {type: object, properties: {city: {type: string}}}
//
// or structured, with the schema under "parameters", "schema", "input_schema" or
// "inputSchema":
//
//	name: get_weather
//	description: Fetch the current weather
//	schema: {type: object, properties: {city: {type: string}}}
//
// Anything else fails with an error matching core.ErrInvalidTool.
func Parse(data []byte) ([]Input, error) {
	ctx := context.Background()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.WrapErr(ctx, err, "failed to read tool document").Kind(core.ErrInvalidTool)
	}

	var items []any
	switch d := doc.(type) {
	case []any:
		items = d
	case map[string]any:
		if list, ok := d["tools"]; ok {
			l, ok := list.([]any)
			if !ok {
				return nil, core.NewErr(ctx, `"tools" must be a list`).Kind(core.ErrInvalidTool)
			}
			items = l
		} else {
			items = []any{d}
		}
	case nil:
		return nil, nil
	default:
		return nil, core.NewErr(ctx, fmt.Sprintf("tool document must be an object or a list, got %T", doc)).
			Kind(core.ErrInvalidTool)
	}

	inputs := make([]Input, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, core.NewErr(ctx, fmt.Sprintf("tool %d must be an object, got %T", i, item)).
				Kind(core.ErrInvalidTool).
				Tag(slog.Int("index", i))
		}
		in, err := ParseDocument(m)
		if err != nil {
			return nil, core.WrapErr(ctx, err, fmt.Sprintf("tool %d", i)).Tag(slog.Int("index", i))
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// ParseFile reads tool documents from a JSON or YAML file. See Parse.
func ParseFile(path string) ([]Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helpers.WrapErrorf(err, "failed to read %s", path)
	}
	inputs, err := Parse(data)
	if err != nil {
		return nil, helpers.WrapErrorf(err, "%s", path)
	}
	return inputs, nil
}

// ParseDocument classifies one decoded tool document. See Parse for the accepted shapes.
func ParseDocument(doc map[string]any) (Input, error) {
	ctx := context.Background()

	typ, hasType := doc["type"]
	_, hasFunction := doc["function"]
	if hasType || hasFunction {
		if typ != nil && typ != "function" {
			return nil, core.NewErr(ctx, fmt.Sprintf("unsupported tool type %v", typ)).
				Kind(core.ErrInvalidTool)
		}
		return parseNative(ctx, doc)
	}

	if _, ok := doc["name"]; ok {
		return parseStructured(ctx, doc)
	}

	err := core.NewErr(ctx, `tool document needs a "function" object or a "name"`).Kind(core.ErrInvalidTool)
	if hint := spellingHint(doc); hint != "" {
		err = core.NewErr(ctx, `tool document needs a "function" object or a "name" (`+hint+`)`).
			Kind(core.ErrInvalidTool)
	}
	return nil, err
}

func parseNative(ctx context.Context, doc map[string]any) (Input, error) {
	fn, ok := doc["function"].(map[string]any)
	if !ok {
		return nil, core.NewErr(ctx, `function tool needs a "function" object`).Kind(core.ErrInvalidTool)
	}
	name, ok := fn["name"].(string)
	if !ok || name == "" {
		return nil, core.NewErr(ctx, "function name is required").Kind(core.ErrInvalidTool)
	}

	def := openai.FunctionDefinitionParam{Name: name}
	if desc, ok := fn["description"]; ok {
		s, ok := desc.(string)
		if !ok {
			return nil, fieldTypeError(ctx, name, "description", "a string", desc)
		}
		def.Description = openai.String(s)
	}
	if params, ok := fn["parameters"]; ok && params != nil {
		p, ok := params.(map[string]any)
		if !ok {
			return nil, fieldTypeError(ctx, name, "parameters", "an object", params)
		}
		def.Parameters = p
	}
	if strict, ok := fn["strict"]; ok && strict != nil {
		b, ok := strict.(bool)
		if !ok {
			return nil, fieldTypeError(ctx, name, "strict", "a boolean", strict)
		}
		def.Strict = openai.Bool(b)
	}

	return FromDefinition(openai.ChatCompletionFunctionToolParam{
		Function: def,
		Type:     constant.Function("").Default(),
	}), nil
}

func parseStructured(ctx context.Context, doc map[string]any) (Input, error) {
	name, ok := doc["name"].(string)
	if !ok || name == "" {
		return nil, core.NewErr(ctx, "tool name must be a non-empty string").Kind(core.ErrInvalidTool)
	}

	var description string
	if desc, ok := doc["description"]; ok {
		if description, ok = desc.(string); !ok {
			return nil, fieldTypeError(ctx, name, "description", "a string", desc)
		}
	}

	var schema any
	for _, key := range schemaKeys {
		if s, ok := doc[key]; ok {
			schema = s
			break
		}
	}
	return New(name, description, schema), nil
}

func fieldTypeError(ctx context.Context, tool, field, want string, got any) *core.Error {
	return core.NewErr(ctx, fmt.Sprintf("%q must be %s, got %T", field, want, got)).
		Kind(core.ErrInvalidTool).
		Tag(slog.String("tool", tool))
}

// spellingHint suggests known keys for unknown keys that look like misspellings.
func spellingHint(doc map[string]any) string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		best, bestScore := "", float32(0)
		for _, known := range knownKeys {
			if key == known {
				best = ""
				break
			}
			if score := edlib.JaroWinklerSimilarity(key, known); score > bestScore {
				best, bestScore = known, score
			}
		}
		if best != "" && bestScore >= hintSimilarity {
			return fmt.Sprintf("did you mean %q instead of %q?", best, key)
		}
	}
	return ""
}
