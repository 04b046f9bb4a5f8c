package model

import (
	"path/filepath"
	"strings"
	"time"
)

// User-facing messages attached to conversion results
const (
	MsgUnsupportedFormat = "Unsupported format selected."
	HintUnsupported      = "Choose a valid format."
	MsgAlreadyFormat     = "Already correct format."
	HintAlreadyFormat    = "No conversion needed."
	MsgToolFailed        = "FFmpeg failed."
	MsgLaunchFailed      = "Failed to run FFmpeg."
	MsgConverted         = "Conversion complete."
)

// ConversionRequest describes a single user-initiated conversion.
// It owns no resources and is discarded after producing one result.
type ConversionRequest struct {
	InputPath      string
	InputExtension string // lower-case, no leading dot
	Output         OutputFormat
}

// NewConversionRequest builds a request for inputPath, deriving the input extension from the path
func NewConversionRequest(inputPath string, output OutputFormat) ConversionRequest {
	_, ext := SplitName(filepath.Base(inputPath))
	return ConversionRequest{
		InputPath:      inputPath,
		InputExtension: strings.ToLower(ext),
		Output:         output,
	}
}

// ConversionResult is the classified outcome of a ConversionRequest
type ConversionResult struct {
	ID         string
	Outcome    Outcome
	OutputPath string // set on success, and on tool failure for reference
	Message    string // short headline
	Detail     string // hint, captured stderr, or launch error text
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the conversion produced its output
func (r ConversionResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// Duration returns how long the request took, or zero if it never finished
func (r ConversionResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// SplitName splits a base file name into stem and extension (without dot).
// A name with a single leading dot and no other dot is all stem, so ".heic"
// has stem ".heic" and no extension.
func SplitName(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
