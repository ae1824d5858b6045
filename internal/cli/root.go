// Package cli implements the toolbind command line: converting tool documents into
// OpenAI function tools and reporting how each tool would be converted.
package cli

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/helpers"
	"github.com/calque-ai/toolbind/pkg/logger"
)

// Environment variables read by the CLI. Flags take precedence.
const (
	envStrict        = "TOOLBIND_STRICT"
	envStrictSchemas = "TOOLBIND_STRICT_SCHEMAS"
	envLogLevel      = "TOOLBIND_LOG_LEVEL"
	envLogFormat     = "TOOLBIND_LOG_FORMAT"
)

// NewRootCmd builds the toolbind command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:               "toolbind",
		Short:             "Convert tool definitions into OpenAI function tools",
		Long:              "toolbind reads tool definitions (native OpenAI tools or name/description/schema documents in JSON or YAML) and prints them in the OpenAI Chat Completions function tool format.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug | info | warn | error (env "+envLogLevel+", default warn)")
	root.PersistentFlags().String("log-format", "", "Log format: console | json (env "+envLogFormat+", default console)")

	root.AddCommand(NewConvertCmd())
	root.AddCommand(NewDialectCmd())
	return root
}

// setupLogging puts a request-scoped logger on the command context. Logs go to stderr so
// stdout stays machine readable.
func setupLogging(cmd *cobra.Command, _ []string) error {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	formatFlag, _ := cmd.Flags().GetString("log-format")

	level, err := logger.ParseLevel(helpers.DefaultString(levelFlag, helpers.GetStringFromEnv(envLogLevel, ""), "warn"))
	if err != nil {
		return usageError("%v", err)
	}
	format := strings.ToLower(helpers.DefaultString(formatFlag, helpers.GetStringFromEnv(envLogFormat, ""), "console"))
	if format != "console" && format != "json" {
		return usageError("unknown log format %q", format)
	}

	l := newLogger(cmd.ErrOrStderr(), level, format)
	ctx := core.WithLogger(cmd.Context(), l)
	ctx = core.WithRequestID(ctx, uuid.NewString())
	cmd.SetContext(ctx)
	return nil
}

func newLogger(w io.Writer, level logger.LogLevel, format string) *slog.Logger {
	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	zl := zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger()
	return slog.New(logger.NewHandler(logger.NewZerologAdapter(zl)))
}

func zerologLevel(level logger.LogLevel) zerolog.Level {
	switch level {
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
