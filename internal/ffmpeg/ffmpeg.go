package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// Request describes a single bounded ffmpeg invocation.
type Request struct {
	Args    []string
	Timeout time.Duration
}

// Result carries the captured output of a completed invocation.
type Result struct {
	Stdout string
	Stderr string
}

// Runner executes bounded ffmpeg invocations.
type Runner interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// CommandError reports a failed invocation together with its captured
// diagnostic stream.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("ffmpeg %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("ffmpeg %s: %v: %s", strings.Join(e.Args, " "), e.Err, detail)
}

func (e *CommandError) Unwrap() error { return e.Err }

// TimedOut reports whether the invocation was terminated by its deadline.
func (e *CommandError) TimedOut() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// Option configures the CLI runner.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI invokes the ffmpeg command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI runner using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Binary returns the configured executable name.
func (c *CLI) Binary() string { return c.binary }

// Run executes ffmpeg with the request arguments, enforcing the request
// timeout and capturing both output streams. A non-zero exit, a missing
// binary, or timeout expiry yields a *CommandError.
func (c *CLI) Run(ctx context.Context, req Request) (Result, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	cmd := commandContext(ctx, c.binary, req.Args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return res, &CommandError{Args: req.Args, Stderr: res.Stderr, Err: err}
	}
	return res, nil
}

var _ Runner = (*CLI)(nil)
