package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pgadvise/internal/deps"
	"pgadvise/internal/preflight"
)

func newStatusCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show probe readiness and environment health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Config: %s\n\n", cmdCtx.cfgPath)

			results := preflight.RunAll(cfg)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Name, passLabel(result.Passed), result.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "State", "Detail"}, rows, nil, tableStyle(cmd)))

			statuses := deps.CheckBinaries(deps.Requirements())
			depRows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				detail := status.Detail
				if status.Available {
					detail = status.Description
				}
				depRows = append(depRows, []string{status.Name, availableLabel(status), detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Binary", "State", "Detail"}, depRows, nil, tableStyle(cmd)))
			return nil
		},
	}
}

func passLabel(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}

func availableLabel(status deps.Status) string {
	switch {
	case status.Available:
		return "found"
	case status.Optional:
		return "missing (optional)"
	default:
		return "MISSING"
	}
}
