package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pgadvise/internal/journal"
)

func newHistoryCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List advisories raised by past checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), journalOpenTimeout)
			defer cancel()

			store, err := journal.Open(ctx, cfg.Paths.JournalDir)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.List(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No advisories recorded.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.CreatedAt.UTC().Format(time.RFC3339),
					entry.Question,
					entry.Setting + " = " + entry.Value,
					entry.ConfFile,
					deliveredLabel(entry.Delivered),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Raised", "Question", "Assignment", "File", "Displayed"},
				rows, nil, tableStyle(cmd)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	return cmd
}

func deliveredLabel(delivered bool) string {
	if delivered {
		return "yes"
	}
	return "no"
}
