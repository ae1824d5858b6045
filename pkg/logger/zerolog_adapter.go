package logger

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts zerolog.Logger to Adapter
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new adapter for zerolog
//
// Example:
//
//	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
//	slog.New(logger.NewHandler(logger.NewZerologAdapter(zl)))
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Log implements Adapter. The context is attached to the event so zerolog hooks can
// read it.
func (z *ZerologAdapter) Log(ctx context.Context, level LogLevel, msg string, attrs ...Attribute) {
	evt := z.logger.WithLevel(logLevelToZerolog(level))
	if evt == nil {
		return
	}
	if ctx != nil {
		evt = evt.Ctx(ctx)
	}

	for _, attr := range attrs {
		if err, ok := attr.Value.(error); ok {
			evt = evt.AnErr(attr.Key, err)
			continue
		}
		evt = evt.Interface(attr.Key, attr.Value)
	}

	evt.Msg(msg)
}

// IsLevelEnabled implements Adapter, honouring both the logger and the global level.
func (z *ZerologAdapter) IsLevelEnabled(_ context.Context, level LogLevel) bool {
	zl := logLevelToZerolog(level)
	return zl >= z.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Printf implements Adapter
func (z *ZerologAdapter) Printf(format string, v ...any) {
	z.logger.Printf(format, v...)
}

// logLevelToZerolog converts LogLevel to zerolog.Level
func logLevelToZerolog(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
