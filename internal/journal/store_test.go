package journal_test

import (
	"context"
	"testing"
	"time"

	"pgadvise/internal/journal"
)

func openStore(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first := journal.Entry{
		Question:  "pgadvise/standard-conforming-strings",
		ConfFile:  "/etc/postgresql/16/main/postgresql.conf",
		Setting:   "standard_conforming_strings",
		Value:     "on",
		Delivered: true,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	second := journal.Entry{
		Question:  "pgadvise/fsync-disabled",
		ConfFile:  "/etc/postgresql/16/main/postgresql.conf",
		Setting:   "fsync",
		Value:     "off",
		CreatedAt: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record first: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record second: %v", err)
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Question != "pgadvise/fsync-disabled" {
		t.Fatalf("expected newest first, got %q", entries[0].Question)
	}
	if entries[0].Delivered {
		t.Fatal("second entry should not be delivered")
	}
	if !entries[1].Delivered {
		t.Fatal("first entry should be delivered")
	}
	if entries[1].ID == "" {
		t.Fatal("expected generated id")
	}
	if !entries[1].CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("timestamp round-trip failed: %v", entries[1].CreatedAt)
	}
}

func TestListHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := journal.Entry{
			Question:  "pgadvise/standard-conforming-strings",
			ConfFile:  "/etc/postgresql/16/main/postgresql.conf",
			Setting:   "standard_conforming_strings",
			Value:     "on",
			CreatedAt: time.Date(2026, 8, 1, 12, i, 0, 0, time.UTC),
		}
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	entries, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := journal.Open(ctx, dir)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := store.Record(ctx, journal.Entry{
		Question: "pgadvise/standard-conforming-strings",
		ConfFile: "/tmp/postgresql.conf",
		Setting:  "standard_conforming_strings",
		Value:    "on",
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := journal.Open(ctx, dir)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.List(ctx, 0)
	if err != nil {
		t.Fatalf("List after reopen: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected entry to survive reopen, got %d", len(entries))
	}
}
