package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared/constant"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/schema"
	"github.com/calque-ai/toolbind/pkg/tools"
)

// Converter turns a structured tool into an OpenAI function tool.
//
// Implementations must not modify the tool or its schema.
type Converter interface {
	Convert(ctx context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error)

// Convert calls f(ctx, tool).
func (f ConverterFunc) Convert(ctx context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error) {
	return f(ctx, tool)
}

// NativeConverter converts tools whose schema is an invopop *jsonschema.Schema, the
// dialect the openai-go SDK uses for schema generation.
//
// With Strict set, parameters are rewritten for structured-output strict mode and the
// definition is marked strict.
type NativeConverter struct {
	Strict bool
}

// Convert implements Converter.
func (c NativeConverter) Convert(ctx context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error) {
	var s *jsonschema.Schema
	switch v := tool.Schema.(type) {
	case *jsonschema.Schema:
		s = v
	case jsonschema.Schema:
		s = &v
	default:
		return openai.ChatCompletionFunctionToolParam{}, core.NewErr(ctx, fmt.Sprintf("native converter needs an invopop schema, got %T", tool.Schema)).
			Kind(core.ErrInvalidSchema).
			Tag(slog.String("tool", tool.Name))
	}

	params, err := schema.FromInvopop(s)
	if err != nil {
		return openai.ChatCompletionFunctionToolParam{}, schemaError(ctx, err, tool, schema.DialectInvopop)
	}

	def := newDefinition(tool, params)
	if c.Strict {
		schema.Strictify(params)
		def.Function.Strict = openai.Bool(true)
	}
	return def, nil
}

// GenericConverter converts tools whose schema is in any dialect the schema package can
// decode. It never sets strict.
type GenericConverter struct{}

// Convert implements Converter.
func (GenericConverter) Convert(ctx context.Context, tool tools.Structured) (openai.ChatCompletionFunctionToolParam, error) {
	dialect := schema.Detect(tool.Schema)

	params, err := schema.ToMap(tool.Schema)
	if err != nil {
		return openai.ChatCompletionFunctionToolParam{}, schemaError(ctx, err, tool, dialect)
	}
	if params, err = schema.Normalize(params); err != nil {
		return openai.ChatCompletionFunctionToolParam{}, schemaError(ctx, err, tool, dialect)
	}
	return newDefinition(tool, params), nil
}

func newDefinition(tool tools.Structured, params map[string]any) openai.ChatCompletionFunctionToolParam {
	return openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        tool.Name,
			Description: openai.String(tool.Description),
			Parameters:  params,
		},
		Type: constant.Function("").Default(),
	}
}

func schemaError(ctx context.Context, err error, tool tools.Structured, dialect schema.Dialect) *core.Error {
	return core.WrapErr(ctx, err, "failed to convert parameters").
		Kind(core.ErrInvalidSchema).
		Tags(slog.String("tool", tool.Name), slog.String("dialect", dialect.String()))
}
