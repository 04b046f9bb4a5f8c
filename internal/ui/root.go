package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/media-converter/internal/config"
	"github.com/ytget/media-converter/internal/convert"
	"github.com/ytget/media-converter/internal/format"
	"github.com/ytget/media-converter/internal/model"
	"github.com/ytget/media-converter/internal/platform"
)

// ConverterFactory builds a converter for the given transcoder binary.
// The window rebuilds its converter when the binary changes in Settings.
type ConverterFactory func(binary string) convert.Converter

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	state        *AppState
	converter    convert.Converter
	newConverter ConverterFactory
	defaultTool  string
	toolOverride string
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger

	inputLabel   *widget.Label
	chooseBtn    *widget.Button
	formatSelect *widget.Select
	previewLabel *widget.Label
	convertBtn   *widget.Button
	revealBtn    *widget.Button
	openBtn      *widget.Button
	statusLabel  *widget.Label
	detailLabel  *widget.Label
	busy         bool
	lastOutput   string
}

// Options configures NewRootUI
type Options struct {
	Settings     *config.Settings
	NewConverter ConverterFactory
	DefaultTool  string // transcoder used when Settings has no override
	ToolOverride string // explicit transcoder, wins over Settings
	Logger       *log.Logger
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.GetLanguage())

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	defaultTool := opts.DefaultTool
	if defaultTool == "" {
		defaultTool = config.DefaultFFmpegPath
	}

	ui := &RootUI{
		window:       window,
		state:        NewAppState(),
		newConverter: opts.NewConverter,
		defaultTool:  defaultTool,
		toolOverride: strings.TrimSpace(opts.ToolOverride),
		settings:     opts.Settings,
		localization: localization,
		logger:       logger,
	}
	ui.logToolSource()
	ui.converter = ui.newConverter(ui.toolPath())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// toolPath returns the explicit override, else the Settings value, else the configured default
func (ui *RootUI) toolPath() string {
	if ui.toolOverride != "" {
		return ui.toolOverride
	}
	return ui.settings.GetFFmpegPath(ui.defaultTool)
}

// logToolSource reports when one transcoder source shadows another
func (ui *RootUI) logToolSource() {
	saved := ui.settings.GetFFmpegPath("")
	switch {
	case ui.toolOverride != "" && saved != "" && saved != ui.toolOverride:
		ui.logger.Info("ffmpeg flag overrides saved preference", "ffmpeg", ui.toolOverride, "saved", saved)
	case ui.toolOverride == "" && saved != "" && saved != ui.defaultTool:
		ui.logger.Info("saved preference overrides configured ffmpeg", "ffmpeg", saved, "configured", ui.defaultTool)
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.inputLabel = widget.NewLabel("")
	ui.inputLabel.Truncation = fyne.TextTruncateEllipsis

	ui.chooseBtn = widget.NewButton("", ui.onChooseFile)

	ui.formatSelect = widget.NewSelect(nil, ui.onFormatChanged)

	ui.previewLabel = widget.NewLabel("")

	ui.convertBtn = widget.NewButton("", ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	ui.revealBtn = widget.NewButton("", ui.onRevealOutput)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Hide()

	ui.openBtn = widget.NewButton("", ui.onOpenOutput)
	ui.openBtn.Importance = widget.LowImportance
	ui.openBtn.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	// Captured diagnostic text from failed runs
	ui.detailLabel = widget.NewLabel("")
	ui.detailLabel.Wrapping = fyne.TextWrapWord
	ui.detailLabel.TextStyle = fyne.TextStyle{Monospace: true}
	detailScroll := container.NewVScroll(ui.detailLabel)
	detailScroll.SetMinSize(fyne.NewSize(0, DetailMinHeight))

	top := container.NewBorder(nil, nil, nil, settingsBtn, ui.inputLabel)
	content := container.NewBorder(
		container.NewVBox(
			top,
			ui.chooseBtn,
			ui.formatSelect,
			ui.previewLabel,
			ui.convertBtn,
			container.NewBorder(nil, nil, nil, container.NewHBox(ui.openBtn, ui.revealBtn), ui.statusLabel),
		),
		nil,
		nil,
		nil,
		detailScroll,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.SetOnDropped(ui.onDropped)

	ui.refreshUITexts()
	ui.refreshSelection()
}

// refreshUITexts reapplies localized static texts
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.chooseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyChooseFile))
	ui.convertBtn.SetText(IconConvert + " " + ui.localization.GetText(KeyConvert))
	ui.revealBtn.SetText(ui.localization.GetText(KeyShowInFolder))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))

	if ui.state.InputPath() == "" {
		ui.inputLabel.SetText(IconFile + " " + ui.localization.GetText(KeyNoFileSelected))
	} else {
		ui.inputLabel.SetText(IconFile + " " + fmt.Sprintf(ui.localization.GetText(KeySelectedFile), ui.state.InputName()))
	}
}

// onChooseFile opens the file dialog filtered to accepted media types
func (ui *RootUI) onChooseFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.logger.Error("file dialog failed", "err", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			ui.logger.Debug("closing picked file", "err", cerr)
		}
		ui.loadInput(path)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(format.DialogFilter()))
	if dir := ui.settings.GetLastDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	fd.Show()
}

// onDropped accepts the first dropped file as input
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 || ui.busy {
		return
	}
	ui.loadInput(uris[0].Path())
}

// loadInput makes path the current input and recomputes the format list
func (ui *RootUI) loadInput(path string) {
	ui.logger.Info("input selected", "path", path)

	ui.state.SelectInput(path)
	ui.settings.SetLastDirectory(filepath.Dir(path))

	// Restore the last used output format when it is offered
	if last, ok := format.Parse(ui.settings.GetLastFormat()); ok {
		ui.state.SelectFormat(last)
	}

	ui.setLastOutput("")
	ui.setStatus(StatusView{})
	ui.refreshUITexts()
	ui.refreshSelection()

	if len(ui.state.Choices()) == 0 {
		ui.setStatus(StatusView{
			Headline:   IconWarning + " " + ui.localization.GetText(KeyNoOutputs),
			Importance: widget.WarningImportance,
		})
	}
}

// refreshSelection syncs the selector, preview and convert button with the state
func (ui *RootUI) refreshSelection() {
	ui.formatSelect.Options = ui.state.Labels()
	if idx := ui.state.SelectedIndex(); idx != NoSelection {
		// SetSelectedIndex fires onFormatChanged, which is idempotent here
		ui.formatSelect.SetSelectedIndex(idx)
	} else {
		ui.formatSelect.ClearSelected()
	}
	ui.formatSelect.Refresh()

	if len(ui.state.Choices()) == 0 {
		ui.formatSelect.Disable()
	} else {
		ui.formatSelect.Enable()
	}

	ui.updatePreview()
	ui.updateConvertButton()
}

// onFormatChanged handles selection changes in the format selector
func (ui *RootUI) onFormatChanged(label string) {
	if label == "" {
		return
	}
	ui.state.SelectIndex(ui.formatSelect.SelectedIndex())
	ui.updatePreview()
	ui.updateConvertButton()
}

// updatePreview shows the output file name the current selection would produce
func (ui *RootUI) updatePreview() {
	f, ok := ui.state.SelectedFormat()
	switch {
	case ui.state.InputPath() == "":
		ui.previewLabel.SetText(IconPreview + " " + ui.localization.GetText(KeyPreviewHint))
	case !ok:
		ui.previewLabel.SetText(IconPreview + " " + ui.localization.GetText(KeyUnsupportedFile))
	default:
		name := filepath.Base(ui.converter.OutputPath(ui.state.InputPath(), f))
		ui.previewLabel.SetText(IconPreview + " " + fmt.Sprintf(ui.localization.GetText(KeyWillOutput), name))
	}
}

func (ui *RootUI) updateConvertButton() {
	if ui.busy || !ui.state.CanConvert() {
		ui.convertBtn.Disable()
		return
	}
	ui.convertBtn.Enable()
}

// setBusy locks the inputs while a conversion runs so only one exists at a time
func (ui *RootUI) setBusy(busy bool) {
	ui.busy = busy
	if busy {
		ui.chooseBtn.Disable()
		ui.formatSelect.Disable()
	} else {
		ui.chooseBtn.Enable()
		if len(ui.state.Choices()) > 0 {
			ui.formatSelect.Enable()
		}
	}
	ui.updateConvertButton()
}

// onConvertClick runs one conversion for the current selection. The blocking
// invocation runs off the render thread and reports back through fyne.Do.
func (ui *RootUI) onConvertClick() {
	req, ok := ui.state.Request()
	if !ok || ui.busy {
		return
	}

	ui.setBusy(true)
	ui.setLastOutput("")
	ui.setStatus(StatusView{Headline: ui.localization.GetText(KeyConverting), Importance: widget.MediumImportance})

	converter := ui.converter
	go func() {
		result := converter.Convert(context.Background(), req)
		fyne.Do(func() {
			ui.setBusy(false)
			ui.showResult(result)
		})
	}()
}

// showResult surfaces a finished conversion in the status area
func (ui *RootUI) showResult(result model.ConversionResult) {
	ui.logger.Info("conversion finished",
		"id", result.ID,
		"outcome", result.Outcome,
		"ran_ffmpeg", result.Outcome.StartedProcess(),
		"took", result.Duration().Round(time.Millisecond),
	)

	size := ""
	if result.Succeeded() {
		size = platform.HumanFileSize(result.OutputPath)
	}
	ui.setStatus(BuildStatusView(result, ui.localization, size))

	if !result.Succeeded() {
		ui.setLastOutput("")
		return
	}

	ui.setLastOutput(result.OutputPath)
	if f, ok := ui.state.SelectedFormat(); ok {
		ui.settings.SetLastFormat(f.Extension())
	}
	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealOutput()
	}
}

// setLastOutput records the converted file and shows its actions, or hides them for ""
func (ui *RootUI) setLastOutput(path string) {
	ui.lastOutput = path
	if path == "" {
		ui.revealBtn.Hide()
		ui.openBtn.Hide()
		return
	}
	ui.revealBtn.Show()
	ui.openBtn.Show()
}

func (ui *RootUI) setStatus(view StatusView) {
	ui.statusLabel.Importance = view.Importance
	ui.statusLabel.SetText(view.Headline)
	ui.detailLabel.SetText(view.Detail)
}

// onRevealOutput shows the last converted file in the system file manager
func (ui *RootUI) onRevealOutput() {
	if ui.lastOutput == "" {
		return
	}
	if err := platform.OpenFileInManager(ui.lastOutput); err != nil {
		ui.logger.Error("revealing output", "path", ui.lastOutput, "err", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenOutput opens the last converted file with its default application
func (ui *RootUI) onOpenOutput() {
	if ui.lastOutput == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.lastOutput); err != nil {
		ui.logger.Error("opening output", "path", ui.lastOutput, "err", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.converter = ui.newConverter(ui.toolPath())
		ui.logger.Info("settings saved", "ffmpeg", ui.toolPath(), "language", ui.localization.GetCurrentLanguage())
		ui.refreshUITexts()
		ui.updatePreview()
	})
}
