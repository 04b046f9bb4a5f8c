package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-converter/internal/model"
)

func TestAppState_Empty(t *testing.T) {
	state := NewAppState()

	assert.Equal(t, NoSelection, state.SelectedIndex())
	assert.False(t, state.CanConvert())
	assert.Empty(t, state.InputName())

	_, ok := state.Request()
	assert.False(t, ok)
}

func TestAppState_SelectInputDefaultsToFirstChoice(t *testing.T) {
	state := NewAppState()
	state.SelectInput("/tmp/photo.heic")

	assert.Equal(t, []string{"PNG (lossless)", "WEBP (for web)", "AVIF (modern)"}, state.Labels())
	assert.Equal(t, 0, state.SelectedIndex())
	assert.Equal(t, "photo.heic", state.InputName())

	req, ok := state.Request()
	require.True(t, ok)
	assert.Equal(t, model.ConversionRequest{InputPath: "/tmp/photo.heic", InputExtension: "heic", Output: model.FormatPNG}, req)
}

func TestAppState_VideoInputHasNothingToOffer(t *testing.T) {
	state := NewAppState()
	state.SelectInput("/videos/clip.mov")

	assert.Empty(t, state.Choices())
	assert.Equal(t, NoSelection, state.SelectedIndex())
	assert.False(t, state.CanConvert())
}

func TestAppState_NewInputResetsSelection(t *testing.T) {
	state := NewAppState()
	state.SelectInput("/tmp/a.png")
	require.True(t, state.SelectIndex(2))

	state.SelectInput("/tmp/b.txt")
	assert.Equal(t, NoSelection, state.SelectedIndex())

	state.SelectInput("/tmp/c.webp")
	assert.Equal(t, 0, state.SelectedIndex())
}

func TestAppState_SelectIndexBounds(t *testing.T) {
	state := NewAppState()
	state.SelectInput("/tmp/a.png")

	assert.False(t, state.SelectIndex(-1))
	assert.False(t, state.SelectIndex(3))
	assert.True(t, state.SelectIndex(1))

	f, ok := state.SelectedFormat()
	require.True(t, ok)
	assert.Equal(t, model.FormatWEBP, f)
}

func TestAppState_SelectFormat(t *testing.T) {
	state := NewAppState()
	state.SelectInput("/tmp/a.jpeg")

	assert.True(t, state.SelectFormat(model.FormatAVIF))
	f, _ := state.SelectedFormat()
	assert.Equal(t, model.FormatAVIF, f)

	assert.False(t, state.SelectFormat(model.FormatJPG))
	assert.False(t, state.SelectFormat(model.FormatMP4))

	assert.True(t, state.SelectFormat(model.FormatPNG))
	assert.Equal(t, 0, state.SelectedIndex())
}
