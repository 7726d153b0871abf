package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgadvise/internal/testsupport"
)

const testTemplates = `Template: pgadvise/standard-conforming-strings
Type: boolean
Default: true
Description: Disable standard_conforming_strings for this cluster?
 The PostgreSQL configuration enables standard_conforming_strings.
Description-de.UTF-8: standard_conforming_strings deaktivieren?
 Die Konfiguration aktiviert standard_conforming_strings.
`

func writeTemplates(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "templates"), []byte(testTemplates), 0o644); err != nil {
		t.Fatalf("write templates: %v", err)
	}
}

func TestTemplatesShowUsesLocale(t *testing.T) {
	dir := t.TempDir()
	confPath := testsupport.WriteConf(t, dir, "port = 5432")
	configPath := testsupport.WriteToolConfig(t, dir, confPath, "pgadvise/standard-conforming-strings")
	writeTemplates(t, dir)

	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	stdout, _, err := runCommand(t, "--config", configPath,
		"templates", "show", "pgadvise/standard-conforming-strings")
	if err != nil {
		t.Fatalf("templates show returned error: %v", err)
	}
	if !strings.Contains(stdout, "deaktivieren") {
		t.Fatalf("expected German description, got %q", stdout)
	}
	if !strings.Contains(stdout, "Type: boolean") {
		t.Fatalf("expected type line, got %q", stdout)
	}
}

func TestTemplatesShowUnknownQuestion(t *testing.T) {
	dir := t.TempDir()
	confPath := testsupport.WriteConf(t, dir, "port = 5432")
	configPath := testsupport.WriteToolConfig(t, dir, confPath, "pgadvise/standard-conforming-strings")
	writeTemplates(t, dir)

	if _, _, err := runCommand(t, "--config", configPath,
		"templates", "show", "pgadvise/unknown"); err == nil {
		t.Fatal("expected error for unknown question")
	}
}

func TestTemplatesVerify(t *testing.T) {
	dir := t.TempDir()
	confPath := testsupport.WriteConf(t, dir, "port = 5432")
	configPath := testsupport.WriteToolConfig(t, dir, confPath, "pgadvise/standard-conforming-strings")
	writeTemplates(t, dir)

	stdout, _, err := runCommand(t, "--config", configPath, "templates", "verify")
	if err != nil {
		t.Fatalf("templates verify returned error: %v", err)
	}
	if !strings.Contains(stdout, "All 1 probe questions") {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestTemplatesVerifyReportsMissingQuestion(t *testing.T) {
	dir := t.TempDir()
	confPath := testsupport.WriteConf(t, dir, "port = 5432")
	configPath := testsupport.WriteToolConfig(t, dir, confPath, "pgadvise/not-in-templates")
	writeTemplates(t, dir)

	if _, _, err := runCommand(t, "--config", configPath, "templates", "verify"); err == nil {
		t.Fatal("expected error for missing template stanza")
	}
}
