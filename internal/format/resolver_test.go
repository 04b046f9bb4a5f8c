package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-converter/internal/model"
)

func extensions(entries []model.ExtensionEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Extension)
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"jpg", "jpg"},
		{"jpeg", "jpg"},
		{"JPEG", "jpg"},
		{".jpeg", "jpg"},
		{"heic", "jpg"},
		{"png", "png"},
		{"webp", "webp"},
		{"avif", "avif"},
		{"mp4", "mp4"},
		{"mov", "mp4"},
		{"avi", "mp4"},
		{"webm", "mp4"},
		{"gif", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := Normalize(test.input)
		if result != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, model.MediaKindImage, KindOf("heic"))
	assert.Equal(t, model.MediaKindImage, KindOf("png"))
	assert.Equal(t, model.MediaKindVideo, KindOf("webm"))
	assert.Equal(t, model.MediaKindUnknown, KindOf("txt"))
}

func TestResolve_ImagePoolExcludesInput(t *testing.T) {
	cases := map[string][]string{
		"png":  {"jpg", "webp", "avif"},
		"jpg":  {"png", "webp", "avif"},
		"jpeg": {"png", "webp", "avif"},
		"webp": {"png", "jpg", "avif"},
		"avif": {"png", "jpg", "webp"},
	}

	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			got := Resolve(input)
			assert.Equal(t, expected, extensions(got))
			assert.False(t, Contains(got, mustParse(t, Normalize(input))))
		})
	}
}

func TestResolve_VideoPool(t *testing.T) {
	for _, input := range []string{"mp4", "mov", "avi", "webm"} {
		t.Run(input, func(t *testing.T) {
			assert.Empty(t, Resolve(input))
		})
	}
}

func TestResolve_HeicMatchesJPG(t *testing.T) {
	assert.Equal(t, Resolve("jpg"), Resolve("heic"))
	assert.Equal(t, []string{"png", "webp", "avif"}, extensions(Resolve("heic")))
}

func TestResolve_Unknown(t *testing.T) {
	for _, input := range []string{"", "gif", "txt", "heif"} {
		got := Resolve(input)
		require.NotNil(t, got)
		assert.Empty(t, got, "Resolve(%q)", input)
	}
}

func TestResolve_LabelsAndOrder(t *testing.T) {
	got := Resolve("heic")
	require.Len(t, got, 3)

	assert.Equal(t, model.ExtensionEntry{Extension: "png", Label: "PNG (lossless)", Format: model.FormatPNG}, got[0])
	assert.Equal(t, "WEBP (for web)", got[1].Label)
	assert.Equal(t, "AVIF (modern)", got[2].Label)
}

func TestResolvePath(t *testing.T) {
	assert.Empty(t, ResolvePath("/videos/clip.mov"))
	assert.Equal(t, []string{"png", "webp", "avif"}, extensions(ResolvePath("/tmp/photo.HEIC")))
	assert.Empty(t, ResolvePath("/tmp/.heic"))
}

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, "heic", ExtensionOf("/tmp/photo.HEIC"))
	assert.Equal(t, "", ExtensionOf("/tmp/README"))
	assert.Equal(t, "", ExtensionOf("/tmp/.heic"))
	assert.Equal(t, "gz", ExtensionOf("backup.tar.gz"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected model.OutputFormat
		ok       bool
	}{
		{"png", model.FormatPNG, true},
		{".PNG", model.FormatPNG, true},
		{"jpeg", model.FormatJPG, true},
		{"MP4 (H.264)", model.FormatMP4, true},
		{"AVIF (modern)", model.FormatAVIF, true},
		{" webp ", model.FormatWEBP, true},
		{"heic", model.FormatUnknown, false},
		{"mov", model.FormatUnknown, false},
		{"gif", model.FormatUnknown, false},
		{"", model.FormatUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInputExtensions(t *testing.T) {
	exts := InputExtensions()
	assert.Len(t, exts, 10)
	for _, ext := range exts {
		assert.NotEmpty(t, Normalize(ext), "accepted input %q must normalize", ext)
	}

	exts[0] = "changed"
	assert.Equal(t, "mp4", InputExtensions()[0])
}

func TestDialogFilter(t *testing.T) {
	filter := DialogFilter()
	assert.Contains(t, filter, ".heic")
	assert.Contains(t, filter, ".webm")
	for _, ext := range filter {
		assert.Equal(t, byte('.'), ext[0])
	}
}

func mustParse(t *testing.T, ext string) model.OutputFormat {
	t.Helper()
	f, ok := Parse(ext)
	require.True(t, ok, "Parse(%q)", ext)
	return f
}
