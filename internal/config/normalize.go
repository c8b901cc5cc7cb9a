package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	if err := c.normalizeRender(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv(envFPS); ok && strings.TrimSpace(value) != "" {
		fps, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", envFPS, err)
		}
		c.Render.FPS = fps
	}
	if value, ok := os.LookupEnv(envTimingMultiplier); ok && strings.TrimSpace(value) != "" {
		multiplier, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envTimingMultiplier, err)
		}
		c.Animation.TimingMultiplier = multiplier
	}
	return nil
}

func (c *Config) normalizeRender() error {
	var err error
	if c.Render.OutputDir, err = expandPath(strings.TrimSpace(c.Render.OutputDir)); err != nil {
		return fmt.Errorf("render.output_dir: %w", err)
	}
	c.Render.GeneratorVersion = strings.TrimSpace(c.Render.GeneratorVersion)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		if expanded, err := expandPath(file); err == nil {
			c.Logging.File = expanded
		}
	}
}
