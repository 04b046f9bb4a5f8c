package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/media-converter/internal/config"
)

func TestSettingsDialog_Apply(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	window := test.NewWindow(nil)
	defer window.Close()

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()

	if sd.ffmpegEntry.Text != "" {
		t.Errorf("Expected empty ffmpeg override, got %s", sd.ffmpegEntry.Text)
	}

	sd.ffmpegEntry.SetText("/usr/local/bin/ffmpeg")
	sd.languageSelect.SetSelected("Русский")
	sd.autoRevealChk.SetChecked(true)
	sd.apply()

	if got := settings.GetFFmpegPath("ffmpeg"); got != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg path to be saved, got %s", got)
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should be enabled")
	}

	// Clearing the entry falls back to the default binary
	sd.ffmpegEntry.SetText("")
	sd.apply()

	if got := settings.GetFFmpegPath("ffmpeg"); got != "ffmpeg" {
		t.Errorf("Expected fallback ffmpeg, got %s", got)
	}
}
