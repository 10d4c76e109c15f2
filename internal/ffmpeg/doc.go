// Package ffmpeg wraps bounded-timeout invocations of the external ffmpeg
// binary with captured output.
//
// Every pipeline stage that shells out (the version probe, segment staging,
// silence generation, and the final concatenation) goes through the Runner
// interface so tests can substitute a fake executor. Prefer this package over
// ad-hoc exec.Command usage when interacting with ffmpeg.
package ffmpeg
