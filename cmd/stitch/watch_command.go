package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"stitch/internal/pipeline"
	"stitch/internal/staging"
	"stitch/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-combine whenever the input directory changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Paths.InputDir); err != nil {
				return fmt.Errorf("input directory %s must exist before watching: %w", cfg.Paths.InputDir, err)
			}

			staging.CleanStale(cfg.Paths.StagingDir, staging.DefaultStaleAge, logger)

			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			if store != nil {
				defer store.Close()
			}

			opts := []pipeline.Option{}
			if store != nil {
				opts = append(opts, pipeline.WithHistory(store))
			}
			p := pipeline.New(cfg, logger, opts...)

			settle := time.Duration(cfg.Watch.SettleSeconds) * time.Second
			watcher := watch.New(cfg.Paths.InputDir, cfg.Audio.Extension, settle, logger, func(runCtx context.Context) error {
				_, err := p.Run(runCtx)
				return err
			})

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watcher.Run(runCtx)
		},
	}
}
