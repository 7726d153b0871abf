package config

import "strings"

// normalize expands paths, trims string fields, and restores the default
// probe set when the file declared none.
func (c *Config) normalize() error {
	var err error
	if c.Paths.JournalDir, err = expandPath(strings.TrimSpace(c.Paths.JournalDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if c.Paths.TemplatesFile, err = expandPath(strings.TrimSpace(c.Paths.TemplatesFile)); err != nil {
		return err
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if len(c.Probes) == 0 {
		c.Probes = Default().Probes
	}
	for i := range c.Probes {
		probe := &c.Probes[i]
		probe.Setting = strings.TrimSpace(probe.Setting)
		probe.ForbiddenValue = strings.TrimSpace(probe.ForbiddenValue)
		probe.Question = strings.TrimSpace(probe.Question)
		if probe.ConfFile, err = expandPath(strings.TrimSpace(probe.ConfFile)); err != nil {
			return err
		}
	}
	return nil
}
