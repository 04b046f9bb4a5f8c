package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-converter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ffmpegEntry    *widget.Entry
	languageSelect *widget.Select
	autoRevealChk  *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	NewSettingsDialog(settings, loc, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  loc,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder(config.DefaultFFmpegPath)

	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseBinary)
	ffmpegRow := container.NewBorder(nil, nil, nil, browseBtn, sd.ffmpegEntry)

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealChk = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyFFmpegPath)+":"),
		ffmpegRow,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.autoRevealChk,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath(""))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseBinary lets the user pick the ffmpeg executable
func (sd *SettingsDialog) onBrowseBinary() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		sd.ffmpegEntry.SetText(reader.URI().Path())
		_ = reader.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings; an empty ffmpeg path clears the override
func (sd *SettingsDialog) apply() {
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)
}
