package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/media-converter/internal/config"
	"github.com/ytget/media-converter/internal/convert"
	"github.com/ytget/media-converter/internal/logging"
)

type commandContext struct {
	configFlag   *string
	ffmpegFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	logger *log.Logger
}

func newCommandContext(configFlag, ffmpegFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		ffmpegFlag:   ffmpegFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig loads the config file once and applies flag overrides
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if ffmpeg := flagValue(c.ffmpegFlag); ffmpeg != "" {
			cfg.FFmpegPath = ffmpeg
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.LogLevel = strings.ToLower(level)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// setup loads config and builds the logger writing to the command's stderr
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("%w %q", config.ErrInvalidLogLevel, cfg.LogLevel)
	}
	c.logger = logger
	log.SetDefault(logger)

	logger.Debug("configuration loaded", "path", c.configPath, "exists", c.configSeen, "ffmpeg", cfg.FFmpegPath)
	return nil
}

func (c *commandContext) loggerValue() *log.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}

// newConverter builds the conversion service for the configured binary
func (c *commandContext) newConverter() *convert.Service {
	return convert.NewService(convert.Options{
		Binary:              c.config.FFmpegPath,
		Suffix:              c.config.OutputSuffix,
		RemovePartialOutput: c.config.RemovePartialOutput,
		Logger:              c.loggerValue(),
	})
}

const skipConfigAnnotation = "skipConfigLoad"

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
