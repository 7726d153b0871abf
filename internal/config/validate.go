package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateProbes()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.JournalDir) == "" {
		return errors.New("paths.journal_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateProbes() error {
	for i, probe := range c.Probes {
		if probe.ConfFile == "" {
			return fmt.Errorf("probe %d: conf_file must be set", i+1)
		}
		if probe.Setting == "" {
			return fmt.Errorf("probe %d: setting must be set", i+1)
		}
		if probe.ForbiddenValue == "" {
			return fmt.Errorf("probe %d: forbidden_value must be set", i+1)
		}
		if probe.Question == "" {
			return fmt.Errorf("probe %d: question must be set", i+1)
		}
		if !strings.Contains(probe.Question, "/") {
			return fmt.Errorf("probe %d: question %q is not a qualified debconf template name", i+1, probe.Question)
		}
	}
	return nil
}
