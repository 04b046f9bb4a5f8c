package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/media-converter/internal/platform"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that ffmpeg can be found and started",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := platform.CheckTool(cmd.Context(), "ffmpeg", ctx.config.FFmpegPath)

			detail := status.Version
			if detail == "" {
				detail = status.Detail
			}
			table := renderTable(
				[]string{"Tool", "Command", "Available", "Path", "Detail"},
				[][]string{{status.Name, status.Command, yesNo(status.Available), status.Path, detail}},
				nil,
			)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table)
			fmt.Fprintf(out, "Config: %s (exists: %s)\n", ctx.configPath, yesNo(ctx.configSeen))

			if !status.Available {
				return fmt.Errorf("ffmpeg %q: %w", status.Command, platform.ErrToolNotFound)
			}
			return nil
		},
	}
}
