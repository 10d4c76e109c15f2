package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stitch/internal/ordering"
	"stitch/internal/pipeline"
	"stitch/internal/staging"
)

func newCombineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Combine the input directory into a single audio file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, ctx)
		},
	}
}

func runCombine(cmd *cobra.Command, cmdCtx *commandContext) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.buildLogger()
	if err != nil {
		return err
	}

	// Sweep leftovers from crashed runs before taking the staging lock.
	staging.CleanStale(cfg.Paths.StagingDir, staging.DefaultStaleAge, logger)

	store, err := cmdCtx.openHistory()
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	if store != nil {
		defer store.Close()
	}

	out := cmd.OutOrStdout()
	opts := []pipeline.Option{}
	if store != nil {
		opts = append(opts, pipeline.WithHistory(store))
	}
	if isTerminal(out) {
		opts = append(opts, pipeline.WithOrderedHook(func(ordered []ordering.Keyed) {
			printOrderedReport(out, ordered)
		}))
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.New(cfg, logger, opts...).Run(runCtx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pipeline.UserMessage(err))
		return err
	}

	fmt.Fprintf(out, "Combined %d segment(s) with %.2fs of pauses into %s\n",
		result.SegmentCount, result.PauseSeconds, result.OutputPath)
	return nil
}
