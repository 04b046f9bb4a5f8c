package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/media-converter/internal/model"
)

// FFmpeg constants
const (
	FFmpegCommand   = "ffmpeg"
	OverwriteFlag   = "-y"
	InputFlag       = "-i"
	ConvertedSuffix = "_converted"
	FallbackStem    = "output"
	TaskIDPrefix    = "convert-"
)

// Options configures a Service
type Options struct {
	// Binary is the transcoder executable, resolved via PATH when it has no separator
	Binary string
	// Suffix is appended to the input stem to form the output name
	Suffix string
	// RemovePartialOutput deletes whatever the tool left at the output path after a nonzero exit
	RemovePartialOutput bool
	Logger              *log.Logger
}

// Service converts media files by invoking ffmpeg
type Service struct {
	binary        string
	suffix        string
	removePartial bool
	logger        *log.Logger
}

// NewService creates a new conversion service
func NewService(opts Options) *Service {
	s := &Service{
		binary:        opts.Binary,
		suffix:        opts.Suffix,
		removePartial: opts.RemovePartialOutput,
		logger:        opts.Logger,
	}
	if s.binary == "" {
		s.binary = FFmpegCommand
	}
	if s.suffix == "" {
		s.suffix = ConvertedSuffix
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Binary returns the transcoder executable the service invokes
func (s *Service) Binary() string {
	return s.binary
}

// Convert validates req, runs the transcoder synchronously and classifies the result.
// It blocks until the tool exits and never retries.
func (s *Service) Convert(ctx context.Context, req model.ConversionRequest) model.ConversionResult {
	result := model.ConversionResult{
		ID:        generateTaskID(),
		StartedAt: time.Now(),
	}
	logger := s.logger.With("id", result.ID, "input", req.InputPath, "format", req.Output)

	if reason, hint, ok := validate(req); !ok {
		logger.Warn("conversion rejected", "reason", reason)
		return finish(result, model.OutcomeRejected, reason, hint)
	}

	result.OutputPath = s.OutputPath(req.InputPath, req.Output)
	args := BuildFFmpegArgs(req.InputPath, result.OutputPath, req.Output)
	logger.Debug("starting ffmpeg", "binary", s.binary, "args", args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		logger.Info("conversion complete", "output", result.OutputPath, "took", time.Since(result.StartedAt).Round(time.Millisecond))
		return finish(result, model.OutcomeSuccess, model.MsgConverted, "")
	case errors.As(err, &exitErr):
		logger.Error("ffmpeg failed", "output", result.OutputPath, "exit", exitErr.ExitCode())
		if s.removePartial {
			s.removePartialOutput(logger, result.OutputPath)
		}
		return finish(result, model.OutcomeToolFailure, model.MsgToolFailed, stderr.String())
	default:
		logger.Error("failed to start ffmpeg", "binary", s.binary, "err", err)
		result.OutputPath = ""
		return finish(result, model.OutcomeLaunchFailure, model.MsgLaunchFailed, err.Error())
	}
}

// OutputPath returns <dir>/<stem><suffix>.<ext> beside inputPath
func (s *Service) OutputPath(inputPath string, format model.OutputFormat) string {
	return OutputPathWithSuffix(inputPath, s.suffix, format)
}

// OutputPathWithSuffix builds the output path for an explicit suffix
func OutputPathWithSuffix(inputPath, suffix string, format model.OutputFormat) string {
	stem, _ := model.SplitName(filepath.Base(inputPath))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = FallbackStem
	}
	name := fmt.Sprintf("%s%s.%s", stem, suffix, format.Extension())
	return filepath.Join(filepath.Dir(inputPath), name)
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(inputPath, outputPath string, format model.OutputFormat) []string {
	args := []string{
		OverwriteFlag,        // Overwrite output file
		InputFlag, inputPath, // Input file
	}
	args = append(args, format.CodecArgs()...) // Encoder selection, if the format needs one
	return append(args, outputPath)
}

// validate returns the rejection reason and hint for an invalid request
func validate(req model.ConversionRequest) (reason, hint string, ok bool) {
	if !req.Output.Valid() {
		return model.MsgUnsupportedFormat, model.HintUnsupported, false
	}
	if strings.ToLower(req.InputExtension) == req.Output.Extension() {
		return model.MsgAlreadyFormat, model.HintAlreadyFormat, false
	}
	return "", "", true
}

func (s *Service) removePartialOutput(logger *log.Logger, outputPath string) {
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to remove partial output", "output", outputPath, "err", err)
	}
}

func finish(result model.ConversionResult, outcome model.Outcome, message, detail string) model.ConversionResult {
	result.Outcome = outcome
	result.Message = message
	result.Detail = detail
	result.FinishedAt = time.Now()
	return result
}

// generateTaskID generates a unique, time-ordered ID for log correlation
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
