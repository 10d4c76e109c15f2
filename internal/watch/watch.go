// Package watch re-runs the combine pipeline whenever the input directory
// settles after a burst of filesystem changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"stitch/internal/logging"
)

// RunFunc performs one combine attempt. Failures are logged, not fatal;
// the watcher keeps running so a later change can fix the input set.
type RunFunc func(ctx context.Context) error

// Watcher debounces change events on a directory and invokes a RunFunc
// once the directory has been quiet for the settle period.
type Watcher struct {
	dir       string
	extension string
	settle    time.Duration
	logger    *slog.Logger
	run       RunFunc
}

// New builds a Watcher over dir that reacts to files carrying extension.
func New(dir, extension string, settle time.Duration, logger *slog.Logger, run RunFunc) *Watcher {
	if settle <= 0 {
		settle = 2 * time.Second
	}
	return &Watcher{
		dir:       dir,
		extension: strings.ToLower(extension),
		settle:    settle,
		logger:    logging.NewComponentLogger(logger, "watch"),
		run:       run,
	}
}

// Run blocks until ctx is cancelled, re-running the pipeline after each
// settle window. The directory must exist before Run is called.
func (w *Watcher) Run(ctx context.Context) error {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create directory watcher: %w", err)
	}
	defer notifier.Close()

	if err := notifier.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching for changes",
		logging.String("dir", w.dir),
		logging.Duration("settle", w.settle),
	)

	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected",
				logging.String("path", event.Name),
				logging.String("op", event.Op.String()),
			)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.settle)
			pending = true
		case err, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Error(err))
		case <-timer.C:
			pending = false
			w.logger.Info("input settled, combining")
			if err := w.run(ctx); err != nil {
				w.logger.Error("combine failed", logging.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return strings.HasSuffix(strings.ToLower(event.Name), w.extension)
}
