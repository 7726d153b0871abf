package advisory

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"pgadvise/internal/conffile"
	"pgadvise/internal/config"
	"pgadvise/internal/debconf"
	"pgadvise/internal/journal"
	"pgadvise/internal/logging"
)

// Reason values explain why a probe did or did not trigger.
const (
	ReasonConfAbsent     = "configuration file absent"
	ReasonConfUnreadable = "configuration file unreadable"
	ReasonNoMatch        = "no matching assignment"
	ReasonTriggered      = "forbidden assignment found"
)

// Outcome reports one probe evaluation. Err carries any swallowed failure
// (unreadable file, frontend breakage, journal trouble) purely for logging;
// the check flow discards it by design.
type Outcome struct {
	Probe     config.Probe
	Triggered bool
	Delivered bool
	Reason    string
	Err       error
}

// Asker is the narrow slice of the debconf client the checker consumes.
type Asker interface {
	Ask(priority debconf.Priority, question string) (bool, error)
}

// Recorder persists triggered advisories.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
}

// Checker evaluates probes and raises advisories. Both collaborators are
// optional: a nil asker means no debconf frontend is attached, a nil
// recorder disables the journal.
type Checker struct {
	asker    Asker
	recorder Recorder
	logger   *slog.Logger
}

// NewChecker constructs a checker.
func NewChecker(asker Asker, recorder Recorder, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Checker{
		asker:    asker,
		recorder: recorder,
		logger:   logger.With(logging.FieldComponent, "advisory"),
	}
}

// Run evaluates a single probe. It never returns a Go error; see Outcome.
func (c *Checker) Run(ctx context.Context, probe config.Probe) Outcome {
	outcome := Outcome{Probe: probe}

	found, err := conffile.ScanFile(probe.ConfFile, probe.Setting, probe.ForbiddenValue)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			outcome.Reason = ReasonConfAbsent
			c.logger.Debug("nothing to advise", "conf_file", probe.ConfFile, "reason", outcome.Reason)
			return outcome
		}
		outcome.Reason = ReasonConfUnreadable
		outcome.Err = err
		c.logger.Warn("skipping probe", "conf_file", probe.ConfFile, "error", err)
		return outcome
	}
	if !found {
		outcome.Reason = ReasonNoMatch
		c.logger.Debug("nothing to advise", "conf_file", probe.ConfFile, "setting", probe.Setting, "reason", outcome.Reason)
		return outcome
	}

	outcome.Triggered = true
	outcome.Reason = ReasonTriggered
	c.logger.Info("advisory triggered",
		"conf_file", probe.ConfFile,
		"setting", probe.Setting,
		"value", probe.ForbiddenValue,
		"question", probe.Question,
	)

	if c.asker == nil {
		c.logger.Info("no debconf frontend, advisory not displayed", "question", probe.Question)
	} else {
		shown, askErr := c.asker.Ask(debconf.PriorityCritical, probe.Question)
		if askErr != nil {
			outcome.Err = askErr
			c.logger.Warn("debconf exchange failed", "question", probe.Question, "error", askErr)
		} else {
			outcome.Delivered = shown
		}
	}

	if c.recorder != nil {
		entry := journal.Entry{
			Question:  probe.Question,
			ConfFile:  probe.ConfFile,
			Setting:   probe.Setting,
			Value:     probe.ForbiddenValue,
			Delivered: outcome.Delivered,
		}
		if recErr := c.recorder.Record(ctx, entry); recErr != nil {
			outcome.Err = errors.Join(outcome.Err, recErr)
			c.logger.Warn("journal write failed", "question", probe.Question, "error", recErr)
		}
	}

	return outcome
}

// RunAll evaluates every probe in order and returns their outcomes.
func (c *Checker) RunAll(ctx context.Context, probes []config.Probe) []Outcome {
	outcomes := make([]Outcome, 0, len(probes))
	for _, probe := range probes {
		outcomes = append(outcomes, c.Run(ctx, probe))
	}
	return outcomes
}
