package model

// MediaKind is the coarse classification of a file derived from its extension.
type MediaKind int

const (
	MediaKindUnknown MediaKind = iota
	MediaKindImage
	MediaKindVideo
)

// String returns the lower-case name of the kind
func (k MediaKind) String() string {
	switch k {
	case MediaKindImage:
		return "image"
	case MediaKindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// OutputFormat enumerates the formats the converter can produce.
// The zero value is not a valid output.
type OutputFormat int

const (
	FormatUnknown OutputFormat = iota
	FormatPNG
	FormatJPG
	FormatWEBP
	FormatAVIF
	FormatMP4
)

// Encoder names passed to ffmpeg via -c:v
const (
	EncoderH264    = "libx264"
	EncoderAV1     = "libaom-av1"
	VideoCodecFlag = "-c:v"
)

type formatSpec struct {
	ext   string
	label string
	kind  MediaKind
	args  []string
}

var formatTable = map[OutputFormat]formatSpec{
	FormatPNG:  {ext: "png", label: "PNG (lossless)", kind: MediaKindImage},
	FormatJPG:  {ext: "jpg", label: "JPG (compressed)", kind: MediaKindImage},
	FormatWEBP: {ext: "webp", label: "WEBP (for web)", kind: MediaKindImage},
	FormatAVIF: {ext: "avif", label: "AVIF (modern)", kind: MediaKindImage, args: []string{VideoCodecFlag, EncoderAV1}},
	FormatMP4:  {ext: "mp4", label: "MP4 (H.264)", kind: MediaKindVideo, args: []string{VideoCodecFlag, EncoderH264}},
}

// Valid reports whether f is a member of the supported set
func (f OutputFormat) Valid() bool {
	_, ok := formatTable[f]
	return ok
}

// Extension returns the file extension without the leading dot, or "" for an invalid format
func (f OutputFormat) Extension() string {
	return formatTable[f].ext
}

// Label returns the human-readable name shown in the format selector
func (f OutputFormat) Label() string {
	return formatTable[f].label
}

// Kind returns the media kind the format belongs to
func (f OutputFormat) Kind() MediaKind {
	return formatTable[f].kind
}

// CodecArgs returns the extra encoder arguments for the format.
// The returned slice is a copy and may be modified by the caller.
func (f OutputFormat) CodecArgs() []string {
	args := formatTable[f].args
	if len(args) == 0 {
		return nil
	}
	out := make([]string, len(args))
	copy(out, args)
	return out
}

// String implements fmt.Stringer
func (f OutputFormat) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return f.Extension()
}

// ExtensionEntry is one choice offered in the output format list
type ExtensionEntry struct {
	Extension string
	Label     string
	Format    OutputFormat
}

// Entry returns the ExtensionEntry describing f
func (f OutputFormat) Entry() ExtensionEntry {
	return ExtensionEntry{Extension: f.Extension(), Label: f.Label(), Format: f}
}

// Output pools in the order they are offered to the user
var (
	ImageOutputs = []OutputFormat{FormatPNG, FormatJPG, FormatWEBP, FormatAVIF}
	VideoOutputs = []OutputFormat{FormatMP4}
)

// AllFormats returns every supported output format, images first
func AllFormats() []OutputFormat {
	all := make([]OutputFormat, 0, len(ImageOutputs)+len(VideoOutputs))
	all = append(all, ImageOutputs...)
	return append(all, VideoOutputs...)
}
