package config

const (
	defaultSystemConfigPath = "/etc/pgadvise/config.toml"
	defaultUserConfigPath   = "~/.config/pgadvise/config.toml"
	defaultJournalDir       = "/var/lib/pgadvise"
	defaultLogDir           = "/var/log/pgadvise"
	defaultTemplatesFile    = "/usr/share/pgadvise/templates"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"

	// defaultPostgresConf is the versioned cluster path the stock probe
	// inspects. Overridden per deployment via [[probe]] entries.
	defaultPostgresConf = "/etc/postgresql/16/main/postgresql.conf"
)

// DefaultQuestion is the debconf question id used by the stock probe.
const DefaultQuestion = "pgadvise/standard-conforming-strings"

// Default returns a Config populated with repository defaults, including
// the standard_conforming_strings probe.
func Default() Config {
	return Config{
		Paths: Paths{
			JournalDir:    defaultJournalDir,
			LogDir:        defaultLogDir,
			TemplatesFile: defaultTemplatesFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Probes: []Probe{
			{
				ConfFile:       defaultPostgresConf,
				Setting:        "standard_conforming_strings",
				ForbiddenValue: "on",
				Question:       DefaultQuestion,
			},
		},
	}
}
