// Package schema identifies which schema dialect a tool's parameter schema is written in
// and turns any of them into a plain JSON Schema object suitable for function parameters.
//
// Supported inputs:
//   - invopop/jsonschema (*jsonschema.Schema), the dialect with a dedicated converter
//   - google/jsonschema-go, used by MCP servers
//   - swaggest/jsonschema-go
//   - map[string]any, JSON or YAML text ([]byte, json.RawMessage, string)
//   - any other JSON-marshalable value
package schema

import (
	"bytes"
	"encoding/json"

	gjsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	sjsonschema "github.com/swaggest/jsonschema-go"
)

// Dialect names the representation a schema value is written in.
type Dialect int

const (
	// DialectNone is a nil schema: the tool declares no parameters.
	DialectNone Dialect = iota
	// DialectInvopop is github.com/invopop/jsonschema.
	DialectInvopop
	// DialectGoogle is github.com/google/jsonschema-go.
	DialectGoogle
	// DialectSwaggest is github.com/swaggest/jsonschema-go.
	DialectSwaggest
	// DialectJSON is an already-decoded map or JSON text.
	DialectJSON
	// DialectYAML is YAML text.
	DialectYAML
	// DialectValue is any other value, encoded with encoding/json.
	DialectValue
)

var dialectNames = map[Dialect]string{
	DialectNone:     "none",
	DialectInvopop:  "invopop",
	DialectGoogle:   "google",
	DialectSwaggest: "swaggest",
	DialectJSON:     "json",
	DialectYAML:     "yaml",
	DialectValue:    "value",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "unknown"
}

// Detect reports the dialect of v.
//
// Text is JSON when its first non-space byte is '{', otherwise it is treated as YAML.
func Detect(v any) Dialect {
	switch s := v.(type) {
	case nil:
		return DialectNone
	case *jsonschema.Schema:
		if s == nil {
			return DialectNone
		}
		return DialectInvopop
	case jsonschema.Schema:
		return DialectInvopop
	case *gjsonschema.Schema:
		if s == nil {
			return DialectNone
		}
		return DialectGoogle
	case gjsonschema.Schema:
		return DialectGoogle
	case *sjsonschema.Schema:
		if s == nil {
			return DialectNone
		}
		return DialectSwaggest
	case sjsonschema.Schema:
		return DialectSwaggest
	case map[string]any:
		if s == nil {
			return DialectNone
		}
		return DialectJSON
	case json.RawMessage:
		return textDialect(s)
	case []byte:
		return textDialect(s)
	case string:
		return textDialect([]byte(s))
	default:
		return DialectValue
	}
}

// IsSupported reports whether v is in the dialect the native converter understands.
func IsSupported(v any) bool {
	return Detect(v) == DialectInvopop
}

func textDialect(data []byte) Dialect {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return DialectNone
	case trimmed[0] == '{':
		return DialectJSON
	default:
		return DialectYAML
	}
}
