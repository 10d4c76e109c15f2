// Package silence generates the randomized inter-segment pause clips.
package silence

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"stitch/internal/ffmpeg"
	"stitch/internal/logging"
)

// Clip is one generated silence file filling the gap between two segments.
type Clip struct {
	Gap             int
	DurationSeconds float64
	Name            string
	Path            string
}

// SynthesisError names the gap and requested duration of a failed generation.
type SynthesisError struct {
	Gap             int
	DurationSeconds float64
	Err             error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesize %.2fs pause for gap %d: %v", e.DurationSeconds, e.Gap, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Options configures a Synthesizer.
type Options struct {
	Timeout       time.Duration
	SampleRate    int
	ChannelLayout string
	MinSeconds    float64
	MaxSeconds    float64
	Extension     string
	// Rand supplies the pause durations. Nil falls back to a time-seeded
	// source; tests inject a fixed seed for deterministic durations.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Synthesizer produces one silence clip per gap between consecutive segments.
type Synthesizer struct {
	runner ffmpeg.Runner
	opts   Options
	rng    *rand.Rand
	logger *slog.Logger
}

// NewSynthesizer builds a Synthesizer around the given runner.
func NewSynthesizer(runner ffmpeg.Runner, opts Options) *Synthesizer {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{
		runner: runner,
		opts:   opts,
		rng:    rng,
		logger: logging.NewComponentLogger(opts.Logger, "silence"),
	}
}

// Synthesize generates gapCount clips into destDir. Clip names carry the gap
// index and duration so they are unique and independent of manifest ordering.
// The first failure aborts with a *SynthesisError.
func (s *Synthesizer) Synthesize(ctx context.Context, destDir string, gapCount int) ([]Clip, error) {
	clips := make([]Clip, 0, max(gapCount, 0))
	for i := 0; i < gapCount; i++ {
		duration := s.draw()
		name := fmt.Sprintf("silence_%03d_%.2fs%s", i, duration, s.opts.Extension)
		path := filepath.Join(destDir, name)

		args := []string{
			"-f", "lavfi",
			"-i", fmt.Sprintf("anullsrc=r=%d:cl=%s:duration=%.2f", s.opts.SampleRate, s.opts.ChannelLayout, duration),
			"-t", fmt.Sprintf("%.2f", duration),
			"-y", path,
		}
		if _, err := s.runner.Run(ctx, ffmpeg.Request{Args: args, Timeout: s.opts.Timeout}); err != nil {
			return nil, &SynthesisError{Gap: i, DurationSeconds: duration, Err: err}
		}

		s.logger.Debug("created silence clip",
			logging.Int("gap", i),
			logging.Float64("duration_seconds", duration),
		)
		clips = append(clips, Clip{Gap: i, DurationSeconds: duration, Name: name, Path: path})
	}
	return clips, nil
}

// draw returns a duration uniform in [min, max) rounded to 2 decimals. The
// rounded value stays strictly below max.
func (s *Synthesizer) draw() float64 {
	v := s.opts.MinSeconds + s.rng.Float64()*(s.opts.MaxSeconds-s.opts.MinSeconds)
	rounded := math.Round(v*100) / 100
	if rounded >= s.opts.MaxSeconds {
		rounded = math.Round((s.opts.MaxSeconds-0.01)*100) / 100
	}
	return rounded
}
