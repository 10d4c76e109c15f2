package staging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"stitch/internal/logging"
)

const (
	runDirPrefix = "run-"
	lockFileName = ".stitch.lock"
)

// ErrRootBusy indicates another run currently owns the staging root.
var ErrRootBusy = errors.New("staging root is owned by another run")

// Area is the ephemeral directory exclusively owned by one pipeline run.
type Area struct {
	root   string
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// Acquire creates the staging root if needed, takes the root lock, and
// creates a uniquely named run directory under it.
func Acquire(root string, logger *slog.Logger) (*Area, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create staging root %q: %w", root, err)
	}

	lock := flock.New(filepath.Join(root, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire staging lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootBusy, root)
	}

	dir := filepath.Join(root, runDirPrefix+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("create staging directory %q: %w", dir, err)
	}

	return &Area{
		root:   root,
		dir:    dir,
		lock:   lock,
		logger: logging.NewComponentLogger(logger, "staging"),
	}, nil
}

// Dir returns the run directory path.
func (a *Area) Dir() string { return a.dir }

// Path joins name onto the run directory.
func (a *Area) Path(name string) string { return filepath.Join(a.dir, name) }

// Release removes the run directory and drops the root lock. Removal is best
// effort: failures are logged, never escalated, so cleanup can never mask the
// run's primary result. Release is safe to call more than once.
func (a *Area) Release() {
	if a == nil || a.dir == "" {
		return
	}
	if err := os.RemoveAll(a.dir); err != nil {
		a.logger.Warn("failed to remove staging directory",
			logging.String("path", a.dir),
			logging.Error(err),
			logging.String(logging.FieldEventType, "staging_cleanup_failed"),
			logging.String(logging.FieldErrorHint, "check staging_dir permissions"),
		)
	} else {
		a.logger.Debug("removed staging directory", logging.String("path", a.dir))
	}
	a.dir = ""
	if err := a.lock.Unlock(); err != nil {
		a.logger.Warn("failed to release staging lock", logging.Error(err))
	}
}
