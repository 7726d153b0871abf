// Package testsupport holds shared fixtures for pgadvise tests.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteConf writes a postgresql.conf-style file and returns its path.
func WriteConf(t testing.TB, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "postgresql.conf")
	contents := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write conf %s: %v", path, err)
	}
	return path
}

// WriteToolConfig writes a pgadvise config file pointing journal, logs, and
// a single probe at locations under dir, and returns the config path.
func WriteToolConfig(t testing.TB, dir, confFile, question string) string {
	t.Helper()
	contents := strings.Join([]string{
		"[paths]",
		`journal_dir = "` + filepath.Join(dir, "journal") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		`templates_file = "` + filepath.Join(dir, "templates") + `"`,
		"",
		"[logging]",
		`format = "console"`,
		`level = "debug"`,
		"",
		"[[probe]]",
		`conf_file = "` + confFile + `"`,
		`setting = "standard_conforming_strings"`,
		`forbidden_value = "on"`,
		`question = "` + question + `"`,
	}, "\n")

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}
