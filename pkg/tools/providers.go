package tools

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v2"
	"google.golang.org/genai"

	"github.com/calque-ai/toolbind/pkg/core"
)

// FromUnion unwraps a Chat Completions tool union.
//
// Only function tools can be converted; custom (free-form grammar) tools return an
// error matching core.ErrInvalidTool.
func FromUnion(u openai.ChatCompletionToolUnionParam) (Input, error) {
	if u.OfFunction != nil {
		return FromDefinition(*u.OfFunction), nil
	}
	kind := "empty"
	if u.OfCustom != nil {
		kind = "custom"
	}
	return nil, core.NewErr(context.Background(), "only function tools can be bound").
		Kind(core.ErrInvalidTool).
		Tag(slog.String("variant", kind))
}

// FromMCP converts a tool listed by an MCP server.
//
// The input schema is passed through in whatever form the SDK decoded it (a google
// jsonschema-go schema on the server side, a decoded map on the client side).
func FromMCP(t *mcp.Tool) (Structured, error) {
	if t == nil {
		return Structured{}, core.NewErr(context.Background(), "MCP tool is nil").Kind(core.ErrInvalidTool)
	}
	return New(t.Name, t.Description, t.InputSchema), nil
}

// FromOllama converts an Ollama tool declaration.
func FromOllama(t api.Tool) Structured {
	return New(t.Function.Name, t.Function.Description, t.Function.Parameters)
}

// FromGemini converts a Gemini function declaration.
//
// ParametersJsonSchema is preferred when set. Otherwise the genai Schema is used; its
// upper-case type names are lower-cased during conversion.
func FromGemini(fd *genai.FunctionDeclaration) (Structured, error) {
	if fd == nil {
		return Structured{}, core.NewErr(context.Background(), "function declaration is nil").Kind(core.ErrInvalidTool)
	}
	var schema any
	switch {
	case fd.ParametersJsonSchema != nil:
		schema = fd.ParametersJsonSchema
	case fd.Parameters != nil:
		schema = fd.Parameters
	}
	return New(fd.Name, fd.Description, schema), nil
}
