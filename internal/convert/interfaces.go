package convert

import (
	"context"

	"github.com/ytget/media-converter/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, req model.ConversionRequest) model.ConversionResult
	OutputPath(inputPath string, format model.OutputFormat) string
}
