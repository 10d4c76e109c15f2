// Package concat drives the lossless stream-copy join of staged entries into
// the final artifact.
package concat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stitch/internal/ffmpeg"
	"stitch/internal/logging"
)

// Engine invokes the concat demuxer in stream-copy mode. This is the only
// stage that mutates durable state outside the staging area.
type Engine struct {
	runner  ffmpeg.Runner
	timeout time.Duration
	logger  *slog.Logger
}

// NewEngine builds an Engine with the given invocation timeout.
func NewEngine(runner ffmpeg.Runner, timeout time.Duration, logger *slog.Logger) *Engine {
	return &Engine{
		runner:  runner,
		timeout: timeout,
		logger:  logging.NewComponentLogger(logger, "concat"),
	}
}

// Concatenate joins the manifest entries into outputPath without re-encoding,
// overwriting any existing file there. Failures carry the tool's captured
// diagnostic stream via the wrapped *ffmpeg.CommandError.
func (e *Engine) Concatenate(ctx context.Context, manifestPath, outputPath string) error {
	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		"-y", outputPath,
	}
	if _, err := e.runner.Run(ctx, ffmpeg.Request{Args: args, Timeout: e.timeout}); err != nil {
		return fmt.Errorf("concatenate into %s: %w", outputPath, err)
	}

	e.logger.Info("combined artifact written",
		logging.String("output", outputPath),
		logging.String(logging.FieldEventType, "concat_complete"),
	)
	return nil
}
