package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/media-converter/internal/format"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats <file>",
		Short: "List the output formats a file can be converted to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choices := format.ResolvePath(args[0])
			if len(choices) == 0 {
				return fmt.Errorf("no conversions available for %s", filepath.Base(args[0]))
			}

			rows := make([][]string, 0, len(choices))
			for i, c := range choices {
				def := ""
				if i == 0 {
					def = "*"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), c.Extension, c.Label, c.Format.Kind().String(), def})
			}
			table := renderTable(
				[]string{"#", "Extension", "Label", "Kind", "Default"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
