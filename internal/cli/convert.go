package cli

import (
	"encoding/json"
	"log/slog"

	oai "github.com/openai/openai-go/v2"
	"github.com/spf13/cobra"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/helpers"
	"github.com/calque-ai/toolbind/pkg/openai"
)

// NewConvertCmd creates the "convert" subcommand.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Print tools in the OpenAI function tool format",
		Long: `Convert reads tool documents (JSON or YAML; "-" or no file reads stdin) and prints
{"tools": [...]} ready to use as the tools of a Chat Completions request.

Without --strict the strict field of each tool is left as converted. --strict=true or
--strict=false overrides it on every tool.`,
		RunE: runConvert,
	}

	cmd.Flags().Bool("strict", false, "Override the strict field of every tool (env "+envStrict+")")
	cmd.Flags().Bool("strict-schemas", false, "Rewrite supported schemas for strict mode (env "+envStrictSchemas+")")
	cmd.Flags().Bool("compact", false, "Print compact JSON")

	return cmd
}

type convertOutput struct {
	Tools []oai.ChatCompletionToolUnionParam `json:"tools"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	strict, strictSchemas := strictSettings(cmd)
	compact, _ := cmd.Flags().GetBool("compact")

	inputs, err := readTools(cmd, args)
	if err != nil {
		return exitError(err)
	}

	formatter := openai.New(openai.WithConfig(&openai.Config{
		Strict:        strict,
		StrictSchemas: strictSchemas,
	}))
	converted, err := formatter.ConvertAllContext(ctx, inputs)
	if err != nil {
		core.LogError(ctx, "conversion failed", err)
		return exitError(err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(convertOutput{Tools: converted}); err != nil {
		return exitError(helpers.WrapError(err, "failed to write output"))
	}

	core.LogInfo(ctx, "converted tools", slog.Int("count", len(converted)))
	return nil
}

// strictSettings resolves the strict override (flag, then environment, else none) and
// the strict-schemas switch.
func strictSettings(cmd *cobra.Command) (*bool, bool) {
	var strict *bool
	if cmd.Flags().Changed("strict") {
		v, _ := cmd.Flags().GetBool("strict")
		strict = helpers.PtrOf(v)
	} else {
		strict = helpers.GetOptionalBoolFromEnv(envStrict)
	}

	strictSchemas := helpers.GetBoolFromEnv(envStrictSchemas, false)
	if cmd.Flags().Changed("strict-schemas") {
		strictSchemas, _ = cmd.Flags().GetBool("strict-schemas")
	}
	return strict, strictSchemas
}
