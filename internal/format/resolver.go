package format

import (
	"path/filepath"
	"strings"

	"github.com/ytget/media-converter/internal/model"
)

// Canonical extensions after collapsing synonyms
const (
	ExtJPG  = "jpg"
	ExtPNG  = "png"
	ExtWEBP = "webp"
	ExtAVIF = "avif"
	ExtMP4  = "mp4"
)

// synonyms maps every accepted input extension to its canonical name.
// heic is accepted as a JPEG-compatible source but is never an output.
var synonyms = map[string]string{
	"jpg":  ExtJPG,
	"jpeg": ExtJPG,
	"heic": ExtJPG,
	"png":  ExtPNG,
	"webp": ExtWEBP,
	"avif": ExtAVIF,
	"mp4":  ExtMP4,
	"mov":  ExtMP4,
	"avi":  ExtMP4,
	"webm": ExtMP4,
}

// inputExtensions is the accepted input list in file-dialog order
var inputExtensions = []string{"mp4", "mov", "avi", "webm", "png", "jpg", "jpeg", "webp", "heic", "avif"}

// Normalize returns the canonical extension for ext, or "" if unrecognized.
// Case and a leading dot are ignored.
func Normalize(ext string) string {
	return synonyms[clean(ext)]
}

// KindOf returns the media kind of an input extension
func KindOf(ext string) model.MediaKind {
	switch Normalize(ext) {
	case ExtJPG, ExtPNG, ExtWEBP, ExtAVIF:
		return model.MediaKindImage
	case ExtMP4:
		return model.MediaKindVideo
	default:
		return model.MediaKindUnknown
	}
}

// Resolve returns the output choices for an input extension in display order.
// The input's own normalized format is never included. Unknown or empty
// extensions yield an empty slice.
func Resolve(ext string) []model.ExtensionEntry {
	normalized := Normalize(ext)

	var pool []model.OutputFormat
	switch KindOf(normalized) {
	case model.MediaKindImage:
		pool = model.ImageOutputs
	case model.MediaKindVideo:
		pool = model.VideoOutputs
	default:
		return []model.ExtensionEntry{}
	}

	entries := make([]model.ExtensionEntry, 0, len(pool))
	for _, f := range pool {
		if f.Extension() == normalized {
			continue
		}
		entries = append(entries, f.Entry())
	}
	return entries
}

// ResolvePath is Resolve applied to the extension of path
func ResolvePath(path string) []model.ExtensionEntry {
	return Resolve(ExtensionOf(path))
}

// Contains reports whether f is one of the entries
func Contains(entries []model.ExtensionEntry, f model.OutputFormat) bool {
	for _, e := range entries {
		if e.Format == f {
			return true
		}
	}
	return false
}

// ExtensionOf returns the lower-cased extension of path without the dot
func ExtensionOf(path string) string {
	_, ext := model.SplitName(filepath.Base(path))
	return strings.ToLower(ext)
}

// Parse looks up an output format by extension ("png", ".PNG") or by exact display label
func Parse(s string) (model.OutputFormat, bool) {
	trimmed := strings.TrimSpace(s)
	for _, f := range model.AllFormats() {
		if trimmed == f.Label() {
			return f, true
		}
	}
	name := clean(trimmed)
	if name == "jpeg" {
		name = ExtJPG
	}
	for _, f := range model.AllFormats() {
		if f.Extension() == name {
			return f, true
		}
	}
	return model.FormatUnknown, false
}

// InputExtensions returns the accepted input extensions
func InputExtensions() []string {
	out := make([]string, len(inputExtensions))
	copy(out, inputExtensions)
	return out
}

// DialogFilter returns InputExtensions with leading dots, as file dialogs expect
func DialogFilter() []string {
	exts := InputExtensions()
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, "."+ext)
	}
	return out
}

func clean(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
