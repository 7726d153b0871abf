package advisory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pgadvise/internal/advisory"
	"pgadvise/internal/config"
	"pgadvise/internal/debconf"
	"pgadvise/internal/journal"
)

type fakeAsker struct {
	calls    []string
	priority debconf.Priority
	shown    bool
	err      error
}

func (f *fakeAsker) Ask(priority debconf.Priority, question string) (bool, error) {
	f.calls = append(f.calls, question)
	f.priority = priority
	if f.err != nil {
		return false, f.err
	}
	return f.shown, nil
}

type fakeRecorder struct {
	entries []journal.Entry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, entry journal.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func writeConf(t *testing.T, contents string) config.Probe {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postgresql.conf")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write conf: %v", err)
	}
	return config.Probe{
		ConfFile:       path,
		Setting:        "standard_conforming_strings",
		ForbiddenValue: "on",
		Question:       "pgadvise/standard-conforming-strings",
	}
}

func TestRunMissingFileDoesNotAsk(t *testing.T) {
	asker := &fakeAsker{shown: true}
	checker := advisory.NewChecker(asker, nil, nil)

	probe := config.Probe{
		ConfFile:       filepath.Join(t.TempDir(), "absent.conf"),
		Setting:        "standard_conforming_strings",
		ForbiddenValue: "on",
		Question:       "pgadvise/standard-conforming-strings",
	}
	outcome := checker.Run(context.Background(), probe)

	if outcome.Triggered {
		t.Fatal("absent file must not trigger")
	}
	if outcome.Err != nil {
		t.Fatalf("absent file is not an error: %v", outcome.Err)
	}
	if outcome.Reason != advisory.ReasonConfAbsent {
		t.Fatalf("unexpected reason: %q", outcome.Reason)
	}
	if len(asker.calls) != 0 {
		t.Fatalf("unexpected debconf calls: %v", asker.calls)
	}
}

func TestRunMatchingAssignmentAsksOnceAtCriticalPriority(t *testing.T) {
	asker := &fakeAsker{shown: true}
	recorder := &fakeRecorder{}
	checker := advisory.NewChecker(asker, recorder, nil)

	probe := writeConf(t, "port = 5432\nstandard_conforming_strings=on\n")
	outcome := checker.Run(context.Background(), probe)

	if !outcome.Triggered {
		t.Fatal("expected advisory to trigger")
	}
	if !outcome.Delivered {
		t.Fatal("expected advisory to be delivered")
	}
	if len(asker.calls) != 1 {
		t.Fatalf("expected exactly one debconf call, got %d", len(asker.calls))
	}
	if asker.calls[0] != probe.Question {
		t.Fatalf("unexpected question: %q", asker.calls[0])
	}
	if asker.priority != debconf.PriorityCritical {
		t.Fatalf("expected critical priority, got %q", asker.priority)
	}
	if len(recorder.entries) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(recorder.entries))
	}
	if !recorder.entries[0].Delivered {
		t.Fatal("journal entry should record delivery")
	}
}

func TestRunNonMatchingContentsDoNotAsk(t *testing.T) {
	for _, contents := range []string{
		"  standard_conforming_strings \t = \t off\n",
		"# standard_conforming_strings = on\n",
		"standard_conforming_strings = ON\n",
		"standard_conforming_strings = on_extra\n",
	} {
		asker := &fakeAsker{shown: true}
		checker := advisory.NewChecker(asker, nil, nil)

		outcome := checker.Run(context.Background(), writeConf(t, contents))
		if outcome.Triggered {
			t.Errorf("contents %q must not trigger", contents)
		}
		if outcome.Reason != advisory.ReasonNoMatch {
			t.Errorf("contents %q: unexpected reason %q", contents, outcome.Reason)
		}
		if len(asker.calls) != 0 {
			t.Errorf("contents %q: unexpected debconf calls %v", contents, asker.calls)
		}
	}
}

func TestRunSwallowsAskerFailure(t *testing.T) {
	asker := &fakeAsker{err: errors.New("frontend went away")}
	recorder := &fakeRecorder{}
	checker := advisory.NewChecker(asker, recorder, nil)

	outcome := checker.Run(context.Background(), writeConf(t, "standard_conforming_strings = on\n"))

	if !outcome.Triggered {
		t.Fatal("expected advisory to trigger")
	}
	if outcome.Delivered {
		t.Fatal("failed ask must not report delivery")
	}
	if outcome.Err == nil {
		t.Fatal("expected swallowed error to be surfaced in Outcome.Err")
	}
	if len(recorder.entries) != 1 {
		t.Fatal("advisory should still be journaled after a failed ask")
	}
	if recorder.entries[0].Delivered {
		t.Fatal("journal entry must record non-delivery")
	}
}

func TestRunWithoutFrontendStillJournals(t *testing.T) {
	recorder := &fakeRecorder{}
	checker := advisory.NewChecker(nil, recorder, nil)

	outcome := checker.Run(context.Background(), writeConf(t, "standard_conforming_strings = on\n"))

	if !outcome.Triggered {
		t.Fatal("expected advisory to trigger")
	}
	if outcome.Delivered {
		t.Fatal("no frontend means no delivery")
	}
	if outcome.Err != nil {
		t.Fatalf("missing frontend is not an error: %v", outcome.Err)
	}
	if len(recorder.entries) != 1 {
		t.Fatal("expected journal entry without frontend")
	}
}

func TestRunSwallowsJournalFailure(t *testing.T) {
	asker := &fakeAsker{shown: true}
	recorder := &fakeRecorder{err: errors.New("disk full")}
	checker := advisory.NewChecker(asker, recorder, nil)

	outcome := checker.Run(context.Background(), writeConf(t, "standard_conforming_strings = on\n"))

	if !outcome.Triggered || !outcome.Delivered {
		t.Fatal("journal failure must not affect the ask")
	}
	if outcome.Err == nil {
		t.Fatal("expected journal error in Outcome.Err")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	probe := writeConf(t, "standard_conforming_strings = on\n")

	before, err := os.ReadFile(probe.ConfFile)
	if err != nil {
		t.Fatalf("read conf: %v", err)
	}

	asker := &fakeAsker{shown: true}
	checker := advisory.NewChecker(asker, nil, nil)
	ctx := context.Background()

	first := checker.Run(ctx, probe)
	second := checker.Run(ctx, probe)
	if first.Triggered != second.Triggered || first.Reason != second.Reason {
		t.Fatalf("outcomes diverged: %+v vs %+v", first, second)
	}

	after, err := os.ReadFile(probe.ConfFile)
	if err != nil {
		t.Fatalf("re-read conf: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("check mutated the configuration file")
	}
}

func TestRunAllEvaluatesEveryProbe(t *testing.T) {
	matching := writeConf(t, "standard_conforming_strings = on\n")
	clean := writeConf(t, "standard_conforming_strings = off\n")

	asker := &fakeAsker{shown: true}
	checker := advisory.NewChecker(asker, nil, nil)

	outcomes := checker.RunAll(context.Background(), []config.Probe{matching, clean})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].Triggered || outcomes[1].Triggered {
		t.Fatalf("unexpected trigger pattern: %+v", outcomes)
	}
	if len(asker.calls) != 1 {
		t.Fatalf("expected one debconf call, got %d", len(asker.calls))
	}
}
