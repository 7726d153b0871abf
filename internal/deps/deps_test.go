package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"pgadvise/internal/deps"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "Ghost", Command: "pgadvise-test-no-such-binary"},
		{Name: "Unset", Command: " "},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("nonexistent binary reported available")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected status for blank command: %+v", statuses[1])
	}
}

func TestCheckBinariesFindsExecutable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-psql")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	t.Setenv("PATH", dir)

	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "psql", Command: "fake-psql", Optional: true},
	})
	if !statuses[0].Available {
		t.Fatalf("expected fake binary to be found: %+v", statuses[0])
	}
}

func TestRequirementsAreAllOptional(t *testing.T) {
	for _, req := range deps.Requirements() {
		if !req.Optional {
			t.Errorf("requirement %s must be optional; the check command needs no binaries", req.Name)
		}
	}
}
