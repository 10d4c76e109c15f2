package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"stitch/internal/config"
	"stitch/internal/deps"
	"stitch/internal/ffmpeg"
)

// minFreeBytes is the floor below which the staging volume is considered
// too full to hold re-encoded segments plus the combined artifact.
const minFreeBytes = 256 << 20

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckFFmpeg verifies the tool responds to a version probe.
func CheckFFmpeg(ctx context.Context, runner ffmpeg.Runner, timeout time.Duration) Result {
	const name = "FFmpeg"
	avail := deps.Probe(ctx, runner, timeout)
	if !avail.Available {
		return Result{Name: name, Detail: avail.Detail}
	}
	return Result{Name: name, Passed: true, Detail: avail.Version}
}

// CheckInputDirectory verifies the input directory exists and is listable.
func CheckInputDirectory(path string) Result {
	const name = "Input directory"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckWritableLocation verifies that path, or its nearest existing ancestor
// when path does not exist yet, can be written to. Staging and output
// locations are created on demand, so absence alone is not a failure.
func CheckWritableLocation(name, path string) Result {
	target, existed := nearestExisting(path)
	if err := unix.Access(target, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", target, err)}
	}
	if existed {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created under %s)", path, target)}
}

// CheckFreeSpace verifies the volume backing path has room for staged copies.
func CheckFreeSpace(path string) Result {
	const name = "Free space"
	target, _ := nearestExisting(path)
	var fs unix.Statfs_t
	if err := unix.Statfs(target, &fs); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", target, err)}
	}
	free := uint64(fs.Bavail) * uint64(fs.Bsize)
	detail := fmt.Sprintf("%.1f GiB available on %s", float64(free)/(1<<30), target)
	if free < minFreeBytes {
		return Result{Name: name, Detail: detail + " (below 256 MiB floor)"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config, runner ffmpeg.Runner) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckFFmpeg(ctx, runner, time.Duration(cfg.Timeouts.Probe)*time.Second),
		CheckInputDirectory(cfg.Paths.InputDir),
		CheckWritableLocation("Staging directory", cfg.Paths.StagingDir),
		CheckWritableLocation("Output location", filepath.Dir(cfg.Paths.OutputFile)),
		CheckFreeSpace(cfg.Paths.StagingDir),
	}
}

// nearestExisting walks up from path until it finds a directory that exists.
// The second return reports whether path itself existed.
func nearestExisting(path string) (string, bool) {
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	dir := path
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir, false
		}
		dir = parent
		if _, err := os.Stat(dir); err == nil {
			return dir, false
		}
	}
}
