package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/media-converter/internal/cli"
	"github.com/ytget/media-converter/internal/config"
	"github.com/ytget/media-converter/internal/convert"
	"github.com/ytget/media-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.media-converter"
	AppName = "Media Converter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(version, runDesktop)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// runDesktop opens the converter window and blocks until it is closed
func runDesktop(cfg *config.Config, logger *log.Logger, ffmpegOverride string) error {
	logger.Info("media converter starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewConverterTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, ui.Options{
		Settings:     config.NewSettings(myApp),
		DefaultTool:  cfg.FFmpegPath,
		ToolOverride: ffmpegOverride,
		Logger:       logger,
		NewConverter: func(binary string) convert.Converter {
			return convert.NewService(convert.Options{
				Binary:              binary,
				Suffix:              cfg.OutputSuffix,
				RemovePartialOutput: cfg.RemovePartialOutput,
				Logger:              logger,
			})
		},
	})

	myWindow.ShowAndRun()
	return nil
}
