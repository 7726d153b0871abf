package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pgadvise/internal/advisory"
	"pgadvise/internal/debconf"
	"pgadvise/internal/journal"
	"pgadvise/internal/logging"
)

const journalOpenTimeout = 10 * time.Second

// newCheckCommand builds the maintainer-script entry point. It always
// returns nil: a broken config, journal, or frontend is logged and
// swallowed so the surrounding package installation proceeds.
func newCheckCommand(cmdCtx *commandContext) *cobra.Command {
	var renotify bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run configuration probes and raise debconf advisories",
		Long: `Scans each configured probe's file for its forbidden assignment and, on a
match, asks the probe's debconf question at critical priority. Intended to be
called from postinst/config maintainer scripts. Exits 0 regardless of outcome.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCheck(cmd, cmdCtx, renotify)
			return nil
		},
	}

	cmd.Flags().BoolVar(&renotify, "renotify", false,
		"Clear each question's seen flag so already-answered advisories are shown again")
	return cmd
}

// renotifyAsker resets a question's seen flag before asking, so debconf
// redisplays questions the administrator answered during a prior install.
type renotifyAsker struct {
	client *debconf.Client
}

func (r renotifyAsker) Ask(priority debconf.Priority, question string) (bool, error) {
	// Best-effort: an unknown question just means it was never asked.
	_ = r.client.ResetSeen(question)
	return r.client.Ask(priority, question)
}

func runCheck(cmd *cobra.Command, cmdCtx *commandContext, renotify bool) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		// No config means no probes; report on stderr and bow out quietly.
		fmt.Fprintf(cmd.ErrOrStderr(), "pgadvise: %v (skipping check)\n", err)
		return
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.FieldComponent, "check")

	var asker advisory.Asker
	client, err := debconf.FromEnvironment()
	switch {
	case err == nil:
		if _, capErr := client.Capabilities(); capErr != nil {
			logger.Warn("debconf handshake failed", "error", capErr)
		} else if renotify {
			asker = renotifyAsker{client: client}
		} else {
			asker = client
		}
	case errors.Is(err, debconf.ErrNoFrontend):
		logger.Debug("no debconf frontend attached")
	default:
		logger.Warn("debconf unavailable", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalOpenTimeout)
	defer cancel()

	var recorder advisory.Recorder
	store, err := journal.Open(ctx, cfg.Paths.JournalDir)
	if err != nil {
		logger.Warn("journal unavailable", "error", err)
	} else {
		defer store.Close()
		recorder = store
	}

	checker := advisory.NewChecker(asker, recorder, logger)
	outcomes := checker.RunAll(ctx, cfg.Probes)

	triggered := 0
	for _, outcome := range outcomes {
		if outcome.Triggered {
			triggered++
		}
		if outcome.Err != nil {
			logger.Warn("probe completed with swallowed error",
				"question", outcome.Probe.Question, "error", outcome.Err)
		}
	}
	logger.Info("check complete", "probes", len(outcomes), "triggered", triggered)
}
