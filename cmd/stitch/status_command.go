package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stitch/internal/ffmpeg"
	"stitch/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the tool, directories, and disk space before a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runner := ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary()))
			results := preflight.RunAll(cmd.Context(), cfg, runner)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				mark := "OK"
				if !r.Passed {
					mark = "FAIL"
					failed++
				}
				rows = append(rows, []string{r.Name, mark, r.Detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Check", "Status", "Detail"}, rows))
			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}
}
