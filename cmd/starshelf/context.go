package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"starshelf/internal/config"
	"starshelf/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
	})
	return c.config, c.configErr
}

// logger builds the structured logger from the loaded config. Commands that
// run before config resolution get a no-op logger.
func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return logging.NewNop()
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return logging.NewNop()
	}
	return logger
}
