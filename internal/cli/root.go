package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/media-converter/internal/config"
)

// GUILauncher opens the desktop window and blocks until it is closed.
// ffmpegOverride is the explicit --ffmpeg value, empty when the flag was not given.
type GUILauncher func(cfg *config.Config, logger *log.Logger, ffmpegOverride string) error

// NewRootCommand builds the media-converter command tree. Running it without a
// subcommand opens the desktop window through launchGUI.
func NewRootCommand(version string, launchGUI GUILauncher) *cobra.Command {
	var configFlag string
	var ffmpegFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &ffmpegFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "media-converter",
		Short:         "Convert images and videos with ffmpeg",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(ctx, launchGUI)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ffmpegFlag, "ffmpeg", "", "ffmpeg executable (overrides ffmpeg_path)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newGUICommand(ctx, launchGUI))
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
