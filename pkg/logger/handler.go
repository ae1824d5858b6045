package logger

import (
	"context"
	"log/slog"
	"slices"
)

// Handler is an slog.Handler that writes through an Adapter, so a zerolog or standard
// log backend can sit behind the *slog.Logger carried on the context.
//
// Groups are flattened into dotted keys ("request.id").
//
// Example:
//
//	adapter := logger.NewZerologAdapter(zerolog.New(os.Stderr))
//	ctx = core.WithLogger(ctx, slog.New(logger.NewHandler(adapter)))
type Handler struct {
	adapter Adapter
	attrs   []Attribute
	prefix  string
}

// NewHandler creates a Handler writing to adapter.
func NewHandler(adapter Adapter) *Handler {
	return &Handler{adapter: adapter}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.adapter.IsLevelEnabled(ctx, slogToLogLevel(level))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make([]Attribute, len(h.attrs), len(h.attrs)+r.NumAttrs())
	copy(attrs, h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, a)
		return true
	})
	h.adapter.Log(ctx, slogToLogLevel(r.Level), r.Message, attrs...)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	if len(as) == 0 {
		return h
	}
	attrs := slices.Clone(h.attrs)
	for _, a := range as {
		attrs = appendAttr(attrs, h.prefix, a)
	}
	return &Handler{adapter: h.adapter, attrs: attrs, prefix: h.prefix}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{adapter: h.adapter, attrs: h.attrs, prefix: h.prefix + name + "."}
}

func appendAttr(attrs []Attribute, prefix string, a slog.Attr) []Attribute {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return attrs
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return attrs
		}
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			attrs = appendAttr(attrs, prefix, ga)
		}
		return attrs
	}
	return append(attrs, Attribute{Key: prefix + a.Key, Value: a.Value.Any()})
}
