// Package deps verifies the availability of the external tools stitch
// shells out to.
package deps

import (
	"context"
	"runtime"
	"strings"
	"time"

	"stitch/internal/ffmpeg"
)

// Availability reports the outcome of the external tool probe.
type Availability struct {
	Available bool
	Version   string
	Detail    string
}

// Probe runs the ffmpeg version query with a bounded timeout. Any non-zero
// exit, timeout, or missing executable yields an unavailable result with a
// human-readable detail.
func Probe(ctx context.Context, runner ffmpeg.Runner, timeout time.Duration) Availability {
	res, err := runner.Run(ctx, ffmpeg.Request{Args: []string{"-version"}, Timeout: timeout})
	if err != nil {
		return Availability{Detail: err.Error()}
	}
	return Availability{Available: true, Version: versionLine(res.Stdout)}
}

// InstallHint returns platform-appropriate ffmpeg installation guidance.
func InstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "install FFmpeg with: brew install ffmpeg"
	case "linux":
		return "install FFmpeg with your package manager, e.g. sudo apt-get install ffmpeg"
	case "windows":
		return "download FFmpeg from https://ffmpeg.org/download.html and add it to PATH"
	default:
		return "install FFmpeg from https://ffmpeg.org/download.html"
	}
}

func versionLine(stdout string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(stdout), "\n")
	return strings.TrimSpace(line)
}
