package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stitch/internal/pipeline"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent combine runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Run history is disabled; set paths.history_db to enable it.")
				return nil
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read run history: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				outcome := pipeline.State(rec.State).Label()
				if rec.State == string(pipeline.StateFailed) && rec.FailedStage != "" {
					outcome = fmt.Sprintf("%s (%s)", outcome, pipeline.State(rec.FailedStage).Label())
				}
				rows = append(rows, []string{
					rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
					outcome,
					strconv.Itoa(rec.SegmentCount),
					fmt.Sprintf("%.2f", rec.PauseSeconds),
					rec.OutputPath,
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Started", "Outcome", "Segments", "Pause s", "Output"}, rows, 2, 3))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")
	return cmd
}
