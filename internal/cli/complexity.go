package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// ComplexityEntry is one row of the complexity table.
type ComplexityEntry struct {
	Algorithm  string `json:"algorithm"`
	Complexity string `json:"complexity"`
}

// NewComplexityCommand creates the complexity command.
func NewComplexityCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:           "complexity",
		Short:         "List the algorithms with their time/space complexity",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats))
			}
			entries := complexityTable()
			out := cmd.OutOrStdout()
			if format == "json" {
				return writeJSON(out, entries)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tTIME/SPACE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Algorithm, e.Complexity)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (json|text)")
	return cmd
}

func complexityTable() []ComplexityEntry {
	algos := sorting.Algorithms()
	entries := make([]ComplexityEntry, len(algos))
	for i, a := range algos {
		entries[i] = ComplexityEntry{Algorithm: a.String(), Complexity: sorting.Complexity(a.String())}
	}
	return entries
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
