package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat_Table(t *testing.T) {
	tests := []struct {
		format OutputFormat
		ext    string
		label  string
		kind   MediaKind
		args   []string
	}{
		{FormatMP4, "mp4", "MP4 (H.264)", MediaKindVideo, []string{"-c:v", "libx264"}},
		{FormatPNG, "png", "PNG (lossless)", MediaKindImage, nil},
		{FormatJPG, "jpg", "JPG (compressed)", MediaKindImage, nil},
		{FormatWEBP, "webp", "WEBP (for web)", MediaKindImage, nil},
		{FormatAVIF, "avif", "AVIF (modern)", MediaKindImage, []string{"-c:v", "libaom-av1"}},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.True(t, tt.format.Valid())
			assert.Equal(t, tt.ext, tt.format.Extension())
			assert.Equal(t, tt.label, tt.format.Label())
			assert.Equal(t, tt.kind, tt.format.Kind())
			assert.Equal(t, tt.args, tt.format.CodecArgs())
		})
	}
}

func TestOutputFormat_Unknown(t *testing.T) {
	for _, f := range []OutputFormat{FormatUnknown, OutputFormat(42)} {
		assert.False(t, f.Valid())
		assert.Empty(t, f.Extension())
		assert.Empty(t, f.Label())
		assert.Equal(t, MediaKindUnknown, f.Kind())
		assert.Nil(t, f.CodecArgs())
		assert.Equal(t, "unknown", f.String())
	}
}

func TestOutputFormat_CodecArgsIsCopy(t *testing.T) {
	args := FormatMP4.CodecArgs()
	args[1] = "changed"

	assert.Equal(t, []string{"-c:v", "libx264"}, FormatMP4.CodecArgs())
}

func TestAllFormats(t *testing.T) {
	assert.Equal(t, []OutputFormat{FormatPNG, FormatJPG, FormatWEBP, FormatAVIF, FormatMP4}, AllFormats())
}

func TestMediaKind_String(t *testing.T) {
	assert.Equal(t, "image", MediaKindImage.String())
	assert.Equal(t, "video", MediaKindVideo.String())
	assert.Equal(t, "unknown", MediaKindUnknown.String())
}
