package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	gjsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	sjsonschema "github.com/swaggest/jsonschema-go"
)

// ErrNotObject is returned when a schema's root does not describe an object.
var ErrNotObject = errors.New("parameters must be an object schema")

// keys dropped from the root; the function definition identifies the schema itself
var rootMetaKeys = []string{"$schema", "$id"}

// ToMap decodes v, in any supported dialect, into a freshly allocated map.
//
// The result never shares maps or slices with v, so callers may modify it freely.
// A nil or empty schema yields an empty map.
func ToMap(v any) (map[string]any, error) {
	var data []byte
	var err error

	switch d := Detect(v); d {
	case DialectNone:
		return map[string]any{}, nil
	case DialectYAML:
		data, err = yaml.YAMLToJSON(textBytes(v))
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML schema: %w", err)
		}
	case DialectJSON:
		if m, ok := v.(map[string]any); ok {
			data, err = json.Marshal(m)
		} else {
			data = textBytes(v)
		}
	default:
		data, err = json.Marshal(addressable(v))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("schema is not a JSON object: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Normalize rewrites a decoded schema in place into function-parameter form and returns it:
//   - "$schema" and "$id" are removed from the root
//   - a root "$ref" into "$defs" or "definitions" is replaced by the definition it names
//   - type names are lower-cased at every depth ("OBJECT" becomes "object")
//   - "nullable": true becomes a "null" type, and "nullable" and "propertyOrdering" are dropped
//   - a missing or empty root type becomes "object", null "required" and "properties"
//     are dropped, and an object without properties gets an empty properties map
//
// A root whose type is anything other than "object" is rejected with ErrNotObject.
func Normalize(m map[string]any) (map[string]any, error) {
	if m == nil {
		m = map[string]any{}
	}
	for _, key := range rootMetaKeys {
		delete(m, key)
	}
	if err := inlineRootRef(m); err != nil {
		return nil, err
	}
	// parameters are always a non-null object
	delete(m, "nullable")
	lowerTypes(m)

	for _, key := range []string{"required", "properties"} {
		if v, ok := m[key]; ok && v == nil {
			delete(m, key)
		}
	}

	switch t := m["type"].(type) {
	case nil:
		m["type"] = "object"
	case string:
		if t == "" {
			m["type"] = "object"
		} else if t != "object" {
			return nil, fmt.Errorf("%w, got type %q", ErrNotObject, t)
		}
	default:
		return nil, fmt.Errorf("%w, got type %v", ErrNotObject, t)
	}
	if _, ok := m["properties"]; !ok {
		m["properties"] = map[string]any{}
	}
	return m, nil
}

// FromInvopop converts an invopop schema into normalized function parameters.
func FromInvopop(s *jsonschema.Schema) (map[string]any, error) {
	m, err := ToMap(s)
	if err != nil {
		return nil, err
	}
	return Normalize(m)
}

func inlineRootRef(m map[string]any) error {
	ref, ok := m["$ref"].(string)
	if !ok {
		return nil
	}

	var defsKey, name string
	switch {
	case strings.HasPrefix(ref, "#/$defs/"):
		defsKey, name = "$defs", strings.TrimPrefix(ref, "#/$defs/")
	case strings.HasPrefix(ref, "#/definitions/"):
		defsKey, name = "definitions", strings.TrimPrefix(ref, "#/definitions/")
	default:
		return fmt.Errorf("unsupported root $ref %q", ref)
	}

	defs, _ := m[defsKey].(map[string]any)
	def, ok := defs[name].(map[string]any)
	if !ok {
		return fmt.Errorf("root $ref %q points to a missing definition", ref)
	}

	delete(m, "$ref")
	for k, v := range def {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	if !referenced(m, ref) {
		delete(defs, name)
		if len(defs) == 0 {
			delete(m, defsKey)
		}
	}
	return nil
}

// referenced reports whether ref is still used anywhere in v outside the definitions.
func referenced(v any, ref string) bool {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if k == "$ref" && child == ref {
				return true
			}
			if k == "$defs" || k == "definitions" {
				continue
			}
			if referenced(child, ref) {
				return true
			}
		}
	case []any:
		for _, child := range node {
			if referenced(child, ref) {
				return true
			}
		}
	}
	return false
}

// lowerTypes walks a schema node, lower-casing type names and rewriting
// Gemini-only keywords into their JSON Schema form.
func lowerTypes(v any) {
	switch node := v.(type) {
	case map[string]any:
		delete(node, "propertyOrdering")
		for k, child := range node {
			switch k {
			case "type":
				node[k] = lowerType(child)
			case "enum", "const", "default", "examples":
				// literal values, not schemas
			case "properties", "patternProperties", "dependentSchemas", "$defs", "definitions":
				// keyed by property or definition name; every value is a schema
				if named, ok := child.(map[string]any); ok {
					for _, sub := range named {
						lowerTypes(sub)
					}
				}
			default:
				lowerTypes(child)
			}
		}
		if n, ok := node["nullable"].(bool); ok {
			delete(node, "nullable")
			if n {
				allowNull(node)
			}
		}
	case []any:
		for _, child := range node {
			lowerTypes(child)
		}
	}
}

func lowerType(t any) any {
	switch tv := t.(type) {
	case string:
		return strings.ToLower(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			if s, ok := item.(string); ok {
				out[i] = strings.ToLower(s)
			} else {
				out[i] = item
			}
		}
		return out
	default:
		return tv
	}
}

// addressable returns a pointer for schema values whose MarshalJSON has a pointer receiver.
func addressable(v any) any {
	switch s := v.(type) {
	case jsonschema.Schema:
		return &s
	case gjsonschema.Schema:
		return &s
	case sjsonschema.Schema:
		return &s
	}
	return v
}

func textBytes(v any) []byte {
	switch t := v.(type) {
	case string:
		return []byte(t)
	case json.RawMessage:
		return t
	case []byte:
		return t
	}
	return nil
}
