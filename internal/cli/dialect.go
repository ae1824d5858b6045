package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calque-ai/toolbind/pkg/openai"
	"github.com/calque-ai/toolbind/pkg/schema"
	"github.com/calque-ai/toolbind/pkg/tools"
)

// NewDialectCmd creates the "dialect" subcommand.
func NewDialectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialect [file...]",
		Short: "Report how each tool would be converted",
		Long:  "Dialect lists every tool with its variant (native or structured), the schema dialect it uses and the conversion path the formatter takes.",
		RunE:  runDialect,
	}

	cmd.Flags().String("format", "text", "Output format: text | json")

	return cmd
}

type dialectReport struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
	Dialect string `json:"dialect"`
	Path    string `json:"path"`
}

func runDialect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return usageError("unknown output format %q", format)
	}

	inputs, err := readTools(cmd, args)
	if err != nil {
		return exitError(err)
	}

	reports := make([]dialectReport, 0, len(inputs))
	for _, in := range inputs {
		reports = append(reports, reportFor(in))
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVARIANT\tDIALECT\tPATH")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Variant, r.Dialect, r.Path)
	}
	return w.Flush()
}

func reportFor(in tools.Input) dialectReport {
	r := dialectReport{Name: tools.Name(in), Dialect: "-", Path: openai.Path(in)}
	switch v := in.(type) {
	case tools.Native:
		r.Variant = "native"
	case *tools.Native:
		r.Variant = "native"
	case tools.Structured:
		r.Variant = "structured"
		r.Dialect = schema.Detect(v.Schema).String()
	case *tools.Structured:
		r.Variant = "structured"
		if v != nil {
			r.Dialect = schema.Detect(v.Schema).String()
		}
	}
	if r.Path == "" {
		r.Path = "invalid"
	}
	return r
}
