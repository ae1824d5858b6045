package logger

import (
	"context"
	"log"
)

// StandardAdapter adapts the standard library log package to Adapter
type StandardAdapter struct {
	logger   *log.Logger
	minLevel LogLevel
}

// NewStandardAdapter creates a new adapter for the standard log package.
// Every level is enabled; use WithMinLevel to filter.
func NewStandardAdapter(logger *log.Logger) *StandardAdapter {
	return &StandardAdapter{logger: logger, minLevel: DebugLevel}
}

// WithMinLevel returns a copy of s that drops entries below level.
func (s *StandardAdapter) WithMinLevel(level LogLevel) *StandardAdapter {
	return &StandardAdapter{logger: s.logger, minLevel: level}
}

// Log implements Adapter. Entries are written as "LEVEL msg key=value ...".
func (s *StandardAdapter) Log(_ context.Context, level LogLevel, msg string, attrs ...Attribute) {
	s.logger.Printf("%-5s %s%s", level.upper(), msg, formatAttrs(attrs))
}

// IsLevelEnabled implements Adapter.
func (s *StandardAdapter) IsLevelEnabled(_ context.Context, level LogLevel) bool {
	return level >= s.minLevel
}

// Printf implements Adapter.
func (s *StandardAdapter) Printf(format string, v ...any) {
	s.logger.Printf(format, v...)
}

func (l LogLevel) upper() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return l.String()
	}
}
