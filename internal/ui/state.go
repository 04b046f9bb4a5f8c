package ui

import (
	"path/filepath"

	"github.com/ytget/media-converter/internal/format"
	"github.com/ytget/media-converter/internal/model"
)

// NoSelection is the selected index when no output format is chosen
const NoSelection = -1

// AppState is the single owned state of the converter window. Every event
// handler runs on the UI thread and mutates it through these methods.
type AppState struct {
	inputPath string
	choices   []model.ExtensionEntry
	selected  int
}

// NewAppState returns an empty state with nothing selected
func NewAppState() *AppState {
	return &AppState{selected: NoSelection}
}

// SelectInput records path as the current input and recomputes the output
// choices. The first choice becomes the selection; with no choices nothing is
// selected and conversion is disabled.
func (s *AppState) SelectInput(path string) {
	s.inputPath = path
	s.choices = format.ResolvePath(path)
	if len(s.choices) > 0 {
		s.selected = 0
	} else {
		s.selected = NoSelection
	}
}

// InputPath returns the current input, or "" if none
func (s *AppState) InputPath() string {
	return s.inputPath
}

// InputName returns the base name of the current input
func (s *AppState) InputName() string {
	if s.inputPath == "" {
		return ""
	}
	return filepath.Base(s.inputPath)
}

// Choices returns the resolved output choices
func (s *AppState) Choices() []model.ExtensionEntry {
	return s.choices
}

// Labels returns the display labels of the choices, in order
func (s *AppState) Labels() []string {
	labels := make([]string, 0, len(s.choices))
	for _, c := range s.choices {
		labels = append(labels, c.Label)
	}
	return labels
}

// SelectedIndex returns the index of the selected choice or NoSelection
func (s *AppState) SelectedIndex() int {
	return s.selected
}

// SelectIndex selects the i-th choice and reports whether i was in range
func (s *AppState) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.choices) {
		return false
	}
	s.selected = i
	return true
}

// SelectFormat selects f if it is among the choices
func (s *AppState) SelectFormat(f model.OutputFormat) bool {
	for i, c := range s.choices {
		if c.Format == f {
			s.selected = i
			return true
		}
	}
	return false
}

// SelectedFormat returns the chosen output format
func (s *AppState) SelectedFormat() (model.OutputFormat, bool) {
	if s.selected < 0 || s.selected >= len(s.choices) {
		return model.FormatUnknown, false
	}
	return s.choices[s.selected].Format, true
}

// CanConvert reports whether a convert action is possible
func (s *AppState) CanConvert() bool {
	_, ok := s.SelectedFormat()
	return ok && s.inputPath != ""
}

// Request builds a fresh conversion request from the current selection
func (s *AppState) Request() (model.ConversionRequest, bool) {
	f, ok := s.SelectedFormat()
	if !ok || s.inputPath == "" {
		return model.ConversionRequest{}, false
	}
	return model.NewConversionRequest(s.inputPath, f), true
}
