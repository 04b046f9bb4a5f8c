package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"photo.heic", "photo", "heic"},
		{"clip.MOV", "clip", "MOV"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{".heic", ".heic", ""},
		{"noext", "noext", ""},
		{"trailing.", "trailing", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitName(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestNewConversionRequest(t *testing.T) {
	req := NewConversionRequest("/tmp/Photo.JPEG", FormatPNG)

	assert.Equal(t, "/tmp/Photo.JPEG", req.InputPath)
	assert.Equal(t, "jpeg", req.InputExtension)
	assert.Equal(t, FormatPNG, req.Output)
}

func TestConversionResult_Duration(t *testing.T) {
	start := time.Now()
	result := ConversionResult{StartedAt: start, FinishedAt: start.Add(2 * time.Second)}
	assert.Equal(t, 2*time.Second, result.Duration())

	assert.Zero(t, ConversionResult{StartedAt: start}.Duration())
}

func TestConversionResult_Succeeded(t *testing.T) {
	assert.True(t, ConversionResult{Outcome: OutcomeSuccess}.Succeeded())
	assert.False(t, ConversionResult{Outcome: OutcomeRejected}.Succeeded())
}
