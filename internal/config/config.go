package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations the tool writes to or reads.
type Paths struct {
	JournalDir    string `toml:"journal_dir"`
	LogDir        string `toml:"log_dir"`
	TemplatesFile string `toml:"templates_file"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Probe describes one configuration assignment that should trigger an
// advisory when present. The default probe set contains the PostgreSQL
// standard_conforming_strings check.
type Probe struct {
	ConfFile       string `toml:"conf_file"`
	Setting        string `toml:"setting"`
	ForbiddenValue string `toml:"forbidden_value"`
	Question       string `toml:"question"`
}

// Config encapsulates all configuration values for pgadvise.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
	Probes  []Probe `toml:"probe"`
}

// EnvConfigPath names the environment variable that overrides the
// configuration file location.
const EnvConfigPath = "PGADVISE_CONFIG"

// DefaultConfigPath returns the system-wide configuration file location.
func DefaultConfigPath() string {
	return defaultSystemConfigPath
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; the returned bool reports whether one was read. Path
// fields come back expanded and absolute.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath picks the configuration file to read: an explicit path,
// the PGADVISE_CONFIG override, the system path, then the per-user path.
func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	userPath, err := expandPath(defaultUserConfigPath)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultSystemConfigPath, userPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}

	return defaultSystemConfigPath, false, nil
}

// EnsureDirectories creates the journal and log directories. The journal
// directory is required; log output falls back to stderr when its directory
// cannot be created, so that one is best-effort.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.JournalDir, 0o755); err != nil {
		return fmt.Errorf("create journal directory %q: %w", c.Paths.JournalDir, err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		_ = os.MkdirAll(c.Paths.LogDir, 0o755)
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
