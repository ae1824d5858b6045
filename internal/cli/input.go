package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calque-ai/toolbind/pkg/core"
	"github.com/calque-ai/toolbind/pkg/helpers"
	"github.com/calque-ai/toolbind/pkg/tools"
)

// readTools parses every file in args in order, or stdin when args is empty or "-".
func readTools(cmd *cobra.Command, args []string) ([]tools.Input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var inputs []tools.Input
	for _, path := range args {
		var (
			parsed []tools.Input
			err    error
		)
		if path == "-" {
			parsed, err = readStdin(cmd.InOrStdin())
		} else {
			parsed, err = tools.ParseFile(path)
		}
		if err != nil {
			return nil, err
		}

		core.LogDebug(cmd.Context(), "read tool document", slog.String("source", path), slog.Int("tools", len(parsed)))
		inputs = append(inputs, parsed...)
	}
	return inputs, nil
}

func readStdin(r io.Reader) ([]tools.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, helpers.WrapError(err, "failed to read stdin")
	}
	parsed, err := tools.Parse(data)
	return parsed, helpers.WrapError(err, "stdin")
}
