package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/media-converter/internal/logging"
)

// Defaults for Config
const (
	DefaultFFmpegPath   = "ffmpeg"
	DefaultOutputSuffix = "_converted"
	DefaultLogLevel     = logging.DefaultLevel
	DefaultConfigName   = "config.toml"
	ConfigDirName       = "media-converter"
)

// Validation errors
var (
	ErrEmptyFFmpegPath = errors.New("ffmpeg_path must not be empty")
	ErrInvalidSuffix   = errors.New("output_suffix must be non-empty and must not contain path separators")
	ErrInvalidLogLevel = errors.New("invalid log_level")
)

// Config is the file-backed configuration shared by the CLI and the desktop app
type Config struct {
	FFmpegPath          string `toml:"ffmpeg_path"`
	OutputSuffix        string `toml:"output_suffix"`
	LogLevel            string `toml:"log_level"`
	RemovePartialOutput bool   `toml:"remove_partial_output"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FFmpegPath:   DefaultFFmpegPath,
		OutputSuffix: DefaultOutputSuffix,
		LogLevel:     DefaultLogLevel,
	}
}

// DefaultConfigPath returns ~/.config/media-converter/config.toml (or the OS equivalent)
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, DefaultConfigName), nil
}

// Load reads the config file at path, falling back to DefaultConfigPath when
// path is empty. A missing file is not an error: defaults are returned and
// exists is false.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	c := Default()

	resolvedPath = path
	if resolvedPath == "" {
		resolvedPath, err = DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
	}

	data, err := os.ReadFile(resolvedPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, "", false, fmt.Errorf("read config: %w", err)
	default:
		exists = true
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}
	return &c, resolvedPath, exists, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FFmpegPath) == "" {
		return ErrEmptyFFmpegPath
	}
	if c.OutputSuffix == "" || strings.ContainsAny(c.OutputSuffix, `/\`) {
		return ErrInvalidSuffix
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Encode renders the config as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func (c *Config) normalize() {
	c.FFmpegPath = strings.TrimSpace(c.FFmpegPath)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
