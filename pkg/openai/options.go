package openai

import (
	"log/slog"

	"github.com/calque-ai/toolbind/pkg/config"
)

// Config holds Formatter configuration.
//
// All fields are optional. The zero Config converts without a strict default, uses the
// built-in converters and logs through the context logger.
//
// Example:
//
//	cfg := &openai.Config{
//		Strict:        helpers.PtrOf(true),
//		StrictSchemas: true,
//	}
type Config struct {
	// Optional. Strict override used when a call does not pass one.
	// nil leaves each definition's strict field as the converter produced it.
	Strict *bool

	// Optional. Let the native converter rewrite supported schemas for strict mode
	// (additionalProperties false, every property required) and mark them strict.
	StrictSchemas bool

	// Optional. Logger used when the call context carries none
	Logger *slog.Logger

	// Optional. Converter for tools whose schema is in the supported dialect
	Native Converter

	// Optional. Converter for every other structured tool
	Generic Converter
}

// Option interface for functional options pattern
type Option interface {
	Apply(*Config)
}

type configOption struct{ config *Config }

func (o configOption) Apply(cfg *Config) { config.Merge(cfg, o.config) }

type strictOption struct{ strict bool }

func (o strictOption) Apply(cfg *Config) { cfg.Strict = &o.strict }

type strictSchemasOption struct{}

func (strictSchemasOption) Apply(cfg *Config) { cfg.StrictSchemas = true }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) Apply(cfg *Config) { cfg.Logger = o.logger }

type nativeOption struct{ converter Converter }

func (o nativeOption) Apply(cfg *Config) { cfg.Native = o.converter }

type genericOption struct{ converter Converter }

func (o genericOption) Apply(cfg *Config) { cfg.Generic = o.converter }

// WithConfig merges cfg into the formatter configuration. Only set fields override.
//
// Example:
//
//	f := openai.New(openai.WithConfig(&openai.Config{StrictSchemas: true}))
func WithConfig(cfg *Config) Option {
	return configOption{config: cfg}
}

// WithDefaultStrict sets the strict override applied when a call passes none.
func WithDefaultStrict(strict bool) Option {
	return strictOption{strict: strict}
}

// WithStrictSchemas makes the native converter produce strict-mode schemas.
func WithStrictSchemas() Option {
	return strictSchemasOption{}
}

// WithLogger sets the logger used when the call context carries none.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger: logger}
}

// WithNativeConverter replaces the converter used for supported-dialect schemas.
func WithNativeConverter(c Converter) Option {
	return nativeOption{converter: c}
}

// WithGenericConverter replaces the converter used for every other structured tool.
func WithGenericConverter(c Converter) Option {
	return genericOption{converter: c}
}

// ConvertOptions holds per-call settings.
type ConvertOptions struct {
	// Optional. Overrides the definition's strict field on every conversion path,
	// including native passthrough. nil means no override.
	Strict *bool
}

// ConvertOption configures a single Convert call.
type ConvertOption func(*ConvertOptions)

// Strict forces the strict field of the result to the given value.
//
// Example:
//
//	def, err := openai.Convert(tool, openai.Strict(true))
func Strict(strict bool) ConvertOption {
	return func(o *ConvertOptions) { o.Strict = &strict }
}

// WithOptions applies a prepared ConvertOptions. A nil opts is a no-op.
func WithOptions(opts *ConvertOptions) ConvertOption {
	return func(o *ConvertOptions) {
		if opts == nil {
			return
		}
		config.Merge(o, opts)
	}
}
