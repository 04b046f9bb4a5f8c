package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-converter/internal/model"
)

// StatusView is what the window shows for a finished conversion
type StatusView struct {
	Headline   string
	Detail     string
	Importance widget.Importance
}

// BuildStatusView turns a result into localized status text. Tool stderr is
// shown verbatim; size is appended to the success headline when known.
func BuildStatusView(result model.ConversionResult, loc *Localization, size string) StatusView {
	switch result.Outcome {
	case model.OutcomeSuccess:
		headline := fmt.Sprintf(loc.GetText(KeyConverted), result.OutputPath)
		if size != "" {
			headline += MiddleDotSeparator + size
		}
		return StatusView{
			Headline:   IconSuccess + " " + headline,
			Importance: widget.SuccessImportance,
		}
	case model.OutcomeToolFailure:
		return StatusView{
			Headline:   IconError + " " + loc.TranslateMessage(result.Message),
			Detail:     result.Detail,
			Importance: widget.DangerImportance,
		}
	case model.OutcomeLaunchFailure:
		return StatusView{
			Headline:   IconError + " " + loc.TranslateMessage(result.Message),
			Detail:     strings.Join([]string{result.Detail, loc.GetText(KeyToolMissing)}, "\n"),
			Importance: widget.DangerImportance,
		}
	default:
		return StatusView{
			Headline:   IconWarning + " " + loc.TranslateMessage(result.Message),
			Detail:     loc.TranslateMessage(result.Detail),
			Importance: widget.WarningImportance,
		}
	}
}
