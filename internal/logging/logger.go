package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Default logger settings
const (
	DefaultLevel      = "info"
	DefaultPrefix     = "media-converter"
	DefaultTimeFormat = time.TimeOnly
)

// Options configures New
type Options struct {
	Level  string    // debug, info, warn, error; empty means DefaultLevel
	Output io.Writer // defaults to os.Stderr
	Prefix string
}

// New creates a logger for opts. An unparseable level is returned as an error
// together with a usable logger at DefaultLevel.
func New(opts Options) (*log.Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	level, err := ParseLevel(opts.Level)

	formatter := log.LogfmtFormatter
	if IsTerminal(out) {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      DefaultTimeFormat,
		Formatter:       formatter,
	})
	return logger, err
}

// ParseLevel converts a level name into a log.Level. Empty input means DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, err
	}
	return level, nil
}

// Discard returns a logger that drops everything, for tests and optional collaborators
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// IsTerminal reports whether w is a terminal file descriptor
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
