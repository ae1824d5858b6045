// Package openai converts tools into the OpenAI Chat Completions function tool format.
//
// A Formatter accepts a tools.Input, which is either a native OpenAI definition (returned
// as-is) or a structured tool whose parameter schema is converted by one of two
// converters:
//   - the native converter, for invopop schemas, the dialect openai-go generates
//   - the generic converter, for every other dialect the schema package understands
//
// An optional strict override is written onto the result whichever path produced it.
//
// Example:
//
//	weather := tools.Reflect[WeatherArgs]("get_weather", "Get the current weather")
//	toolParams, err := openai.ConvertAll([]tools.Input{weather}, openai.Strict(true))
//	if err != nil {
//		return err
//	}
//	req.Tools = toolParams // openai-go ChatCompletionNewParams
package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v2"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/schema"
	"github.com/calque-ai/toolbind/pkg/tools"
)

// Conversion paths reported in debug logs.
const (
	pathNative      = "native"
	pathGeneric     = "generic"
	pathPassthrough = "passthrough"
)

// Formatter converts tools into OpenAI function tool definitions.
//
// A Formatter is immutable after New and safe for concurrent use.
type Formatter struct {
	native  Converter
	generic Converter
	strict  *bool
	logger  *slog.Logger
}

var defaultFormatter = New()

// New creates a Formatter.
//
// Example:
//
//	f := openai.New(openai.WithStrictSchemas(), openai.WithDefaultStrict(true))
//	def, err := f.Convert(tool)
func New(opts ...Option) *Formatter {
	cfg := &Config{}
	for _, opt := range opts {
		opt.Apply(cfg)
	}

	f := &Formatter{
		native:  cfg.Native,
		generic: cfg.Generic,
		logger:  cfg.Logger,
	}
	if f.native == nil {
		f.native = NativeConverter{Strict: cfg.StrictSchemas}
	}
	if f.generic == nil {
		f.generic = GenericConverter{}
	}
	if cfg.Strict != nil {
		strict := *cfg.Strict
		f.strict = &strict
	}
	return f
}

// Convert is ConvertContext with a background context.
func (f *Formatter) Convert(in tools.Input, opts ...ConvertOption) (openai.ChatCompletionFunctionToolParam, error) {
	return f.ConvertContext(context.Background(), in, opts...)
}

// ConvertContext converts a single tool.
//
// Native inputs are returned unchanged. Structured inputs go to the native converter when
// their schema is an invopop schema and to the generic converter otherwise; converter
// errors are returned as-is. When a strict override is in effect (per call, else the
// formatter default) it replaces the result's strict field.
//
// A nil input, a nil pointer variant or a structured tool without a name fails with an
// error matching core.ErrInvalidTool.
//
// The context carries logging and trace metadata only; conversion does no I/O.
func (f *Formatter) ConvertContext(ctx context.Context, in tools.Input, opts ...ConvertOption) (openai.ChatCompletionFunctionToolParam, error) {
	if f.logger != nil && !core.HasLogger(ctx) {
		ctx = core.WithLogger(ctx, f.logger)
	}

	var (
		def  openai.ChatCompletionFunctionToolParam
		path string
		err  error
	)

	switch v := in.(type) {
	case tools.Native:
		def, path = v.Definition, pathPassthrough
	case *tools.Native:
		if v == nil {
			return def, shapeError(ctx, "tool is a nil native definition")
		}
		def, path = v.Definition, pathPassthrough
	case tools.Structured:
		def, path, err = f.convertStructured(ctx, v)
	case *tools.Structured:
		if v == nil {
			return def, shapeError(ctx, "tool is a nil structured tool")
		}
		def, path, err = f.convertStructured(ctx, *v)
	case nil:
		return def, shapeError(ctx, "tool is nil")
	default:
		return def, shapeError(ctx, fmt.Sprintf("unsupported tool type %T", in))
	}
	if err != nil {
		return openai.ChatCompletionFunctionToolParam{}, err
	}

	if strict := f.strictOverride(opts); strict != nil {
		def.Function.Strict = openai.Bool(*strict)
	}

	core.LogDebug(ctx, "converted tool",
		slog.String("tool", def.Function.Name),
		slog.String("path", path),
		slog.Bool("strict", def.Function.Strict.Valid() && def.Function.Strict.Value),
	)
	return def, nil
}

// ConvertAll is ConvertAllContext with a background context.
func (f *Formatter) ConvertAll(ins []tools.Input, opts ...ConvertOption) ([]openai.ChatCompletionToolUnionParam, error) {
	return f.ConvertAllContext(context.Background(), ins, opts...)
}

// ConvertAllContext converts a tool list into the union form used by
// openai.ChatCompletionNewParams.Tools, preserving order.
//
// It stops at the first failing tool and returns no partial result. The error names the
// failing index and tool, and still matches the underlying kind with errors.Is.
//
// Example:
//
//	toolParams, err := formatter.ConvertAllContext(ctx, inputs)
//	if err != nil {
//		return err
//	}
//	params.Tools = toolParams
func (f *Formatter) ConvertAllContext(ctx context.Context, ins []tools.Input, opts ...ConvertOption) ([]openai.ChatCompletionToolUnionParam, error) {
	out := make([]openai.ChatCompletionToolUnionParam, 0, len(ins))
	for i, in := range ins {
		def, err := f.ConvertContext(ctx, in, opts...)
		if err != nil {
			name := tools.Name(in)
			return nil, core.WrapErr(ctx, err, fmt.Sprintf("tool %d (%s)", i, name)).
				Tags(slog.Int("index", i), slog.String("tool", name))
		}
		out = append(out, openai.ChatCompletionToolUnionParam{OfFunction: &def})
	}
	return out, nil
}

// Convert converts a single tool with the default Formatter.
//
// Example:
//
//	def, err := openai.Convert(tools.Simple("search", "Search the docs"))
func Convert(in tools.Input, opts ...ConvertOption) (openai.ChatCompletionFunctionToolParam, error) {
	return defaultFormatter.Convert(in, opts...)
}

// ConvertAll converts a tool list with the default Formatter.
func ConvertAll(ins []tools.Input, opts ...ConvertOption) ([]openai.ChatCompletionToolUnionParam, error) {
	return defaultFormatter.ConvertAll(ins, opts...)
}

// Path reports which conversion path the formatter takes for in: "native", "generic" or
// "passthrough". It returns "" for inputs Convert would reject as malformed.
func Path(in tools.Input) string {
	switch v := in.(type) {
	case tools.Native:
		return pathPassthrough
	case *tools.Native:
		if v != nil {
			return pathPassthrough
		}
	case tools.Structured:
		return structuredPath(v)
	case *tools.Structured:
		if v != nil {
			return structuredPath(*v)
		}
	}
	return ""
}

func structuredPath(s tools.Structured) string {
	if s.Name == "" {
		return ""
	}
	if schema.IsSupported(s.Schema) {
		return pathNative
	}
	return pathGeneric
}

func (f *Formatter) convertStructured(ctx context.Context, s tools.Structured) (openai.ChatCompletionFunctionToolParam, string, error) {
	if s.Name == "" {
		return openai.ChatCompletionFunctionToolParam{}, "", shapeError(ctx, "structured tool has no name")
	}

	if schema.IsSupported(s.Schema) {
		def, err := f.native.Convert(ctx, s)
		return def, pathNative, err
	}
	def, err := f.generic.Convert(ctx, s)
	return def, pathGeneric, err
}

func (f *Formatter) strictOverride(opts []ConvertOption) *bool {
	var o ConvertOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Strict != nil {
		return o.Strict
	}
	return f.strict
}

func shapeError(ctx context.Context, msg string) *core.Error {
	return core.NewErr(ctx, msg).Kind(core.ErrInvalidTool)
}
