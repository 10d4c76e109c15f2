package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

func TestNewCLIWithBinary(t *testing.T) {
	cli := NewCLI(WithBinary("/opt/ffmpeg"))
	if cli.binary != "/opt/ffmpeg" {
		t.Fatalf("expected binary override to be applied, got %q", cli.binary)
	}
}

func stubCommand(t *testing.T, mode string, captured *[][]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if captured != nil {
			*captured = append(*captured, append([]string(nil), args...))
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFMPEG_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestCLIRunCapturesStdout(t *testing.T) {
	var captured [][]string
	stubCommand(t, "version", &captured)

	cli := NewCLI()
	res, err := cli.Run(context.Background(), Request{Args: []string{"-version"}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Stdout == "" {
		t.Fatal("expected stdout to be captured")
	}
	if len(captured) != 1 || captured[0][0] != "-version" {
		t.Fatalf("unexpected captured args: %v", captured)
	}
}

func TestCLIRunWrapsFailureWithStderr(t *testing.T) {
	stubCommand(t, "fail", nil)

	cli := NewCLI()
	_, err := cli.Run(context.Background(), Request{Args: []string{"-i", "missing.mp3"}})
	if err == nil {
		t.Fatal("expected error for failing invocation")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Stderr == "" {
		t.Fatal("expected captured stderr in command error")
	}
	if cmdErr.TimedOut() {
		t.Fatal("non-timeout failure reported as timed out")
	}
}

func TestCLIRunTimeout(t *testing.T) {
	stubCommand(t, "hang", nil)

	cli := NewCLI()
	_, err := cli.Run(context.Background(), Request{Args: []string{"-i", "slow.mp3"}, Timeout: 50 * time.Millisecond})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if !cmdErr.TimedOut() {
		t.Fatalf("expected timeout classification, got %v", cmdErr.Err)
	}
}

// TestHelperProcess stands in for the ffmpeg binary in the tests above.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("FFMPEG_HELPER_MODE") {
	case "version":
		fmt.Println("ffmpeg version 7.1 Copyright (c) 2000-2024 the FFmpeg developers")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "missing.mp3: No such file or directory")
		os.Exit(1)
	case "hang":
		time.Sleep(5 * time.Second)
		os.Exit(0)
	default:
		os.Exit(2)
	}
}
