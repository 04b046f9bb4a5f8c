package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/media-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLastDirectory      = "last_directory"
	KeyLastFormat         = "last_format"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages per-user preferences of the desktop app
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the directory the file dialog should open in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		home, err := platform.GetHomeDir()
		if err != nil {
			return ""
		}
		return home
	}
	return dir
}

// SetLastDirectory remembers the directory of the last chosen input
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLastFormat returns the extension of the last used output format, or ""
func (s *Settings) GetLastFormat() string {
	return s.app.Preferences().String(KeyLastFormat)
}

// SetLastFormat remembers the extension of the last used output format
func (s *Settings) SetLastFormat(ext string) {
	s.app.Preferences().SetString(KeyLastFormat, ext)
}

// GetFFmpegPath returns the preferred transcoder binary, falling back to fallback
func (s *Settings) GetFFmpegPath(fallback string) string {
	return s.app.Preferences().StringWithFallback(KeyFFmpegPath, fallback)
}

// SetFFmpegPath sets the transcoder binary; an empty value clears the override
func (s *Settings) SetFFmpegPath(path string) {
	if path == "" {
		s.app.Preferences().RemoveValue(KeyFFmpegPath)
		return
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal converted files in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal converted files in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
