package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/media-converter/internal/convert"
	"github.com/ytget/media-converter/internal/format"
	"github.com/ytget/media-converter/internal/model"
	"github.com/ytget/media-converter/internal/platform"
)

// conversionError reports a non-success outcome; its text is the result headline
type conversionError struct {
	result model.ConversionResult
}

func (e *conversionError) Error() string {
	return e.result.Message
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var to string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a file next to itself",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if !platform.IsRegularFile(absPath) {
				return fmt.Errorf("%s does not exist or is not a regular file", absPath)
			}

			target, err := chooseOutput(absPath, to)
			if err != nil {
				return err
			}

			converter := ctx.newConverter()
			out := cmd.OutOrStdout()

			if dryRun {
				output := converter.OutputPath(absPath, target)
				argv := append([]string{converter.Binary()}, convert.BuildFFmpegArgs(absPath, output, target)...)
				fmt.Fprintln(out, strings.Join(argv, " "))
				return nil
			}

			result := converter.Convert(cmd.Context(), model.NewConversionRequest(absPath, target))
			ctx.loggerValue().Info("conversion finished",
				"id", result.ID,
				"outcome", result.Outcome,
				"ran_ffmpeg", result.Outcome.StartedProcess(),
				"took", result.Duration().Round(time.Millisecond),
			)
			if result.Outcome.IsFailure() {
				if detail := strings.TrimRight(result.Detail, "\n"); detail != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), detail)
				}
				return &conversionError{result: result}
			}

			if size := platform.HumanFileSize(result.OutputPath); size != "" {
				fmt.Fprintf(out, "Converted: %s (%s)\n", result.OutputPath, size)
			} else {
				fmt.Fprintf(out, "Converted: %s\n", result.OutputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Output format extension or label (default: first offered format)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the ffmpeg command line without running it")
	return cmd
}

// chooseOutput picks the requested output format, which must be offered for path
func chooseOutput(path, requested string) (model.OutputFormat, error) {
	choices := format.ResolvePath(path)
	if len(choices) == 0 {
		return model.FormatUnknown, fmt.Errorf("no conversions available for %s", filepath.Base(path))
	}
	if strings.TrimSpace(requested) == "" {
		return choices[0].Format, nil
	}

	target, ok := format.Parse(requested)
	if !ok {
		return model.FormatUnknown, fmt.Errorf("unknown output format %q", requested)
	}
	if !format.Contains(choices, target) {
		offered := make([]string, 0, len(choices))
		for _, c := range choices {
			offered = append(offered, c.Extension)
		}
		return model.FormatUnknown, fmt.Errorf("%s cannot be converted to %s; choose one of: %s",
			filepath.Base(path), target.Extension(), strings.Join(offered, ", "))
	}
	return target, nil
}
