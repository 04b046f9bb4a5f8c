package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("desktop window is not available in this build")

func newGUICommand(ctx *commandContext, launchGUI GUILauncher) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(ctx, launchGUI)
		},
	}
}

func runGUI(ctx *commandContext, launchGUI GUILauncher) error {
	if launchGUI == nil {
		return errNoGUI
	}
	override := flagValue(ctx.ffmpegFlag)
	ctx.loggerValue().Info("starting desktop window", "ffmpeg", ctx.config.FFmpegPath, "override", override != "")
	return launchGUI(ctx.config, ctx.loggerValue(), override)
}
