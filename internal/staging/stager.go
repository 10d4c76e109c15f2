package staging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stitch/internal/ffmpeg"
	"stitch/internal/logging"
	"stitch/internal/ordering"
)

// Segment is one staged working copy, named so that lexical order of staged
// filenames reproduces the logical order.
type Segment struct {
	Index int
	Name  string
	Path  string
}

// StageError names the source file whose staging operation failed.
type StageError struct {
	Source string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Source, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Stager copies ordered inputs into the staging area under canonical names.
type Stager struct {
	runner  ffmpeg.Runner
	timeout time.Duration
	ext     string
	logger  *slog.Logger
}

// NewStager builds a Stager. Each copy operation is bounded by timeout and the
// staged name carries ext.
func NewStager(runner ffmpeg.Runner, timeout time.Duration, ext string, logger *slog.Logger) *Stager {
	return &Stager{
		runner:  runner,
		timeout: timeout,
		ext:     ext,
		logger:  logging.NewComponentLogger(logger, "stager"),
	}
}

// Stage copies every ordered source into area as segment_NNN. The first
// failure aborts the whole sequence with a *StageError carrying the offending
// source path.
func (s *Stager) Stage(ctx context.Context, area *Area, ordered []ordering.Keyed) ([]Segment, error) {
	segments := make([]Segment, 0, len(ordered))
	for i, item := range ordered {
		name := fmt.Sprintf("segment_%03d%s", i, s.ext)
		dest := area.Path(name)

		_, err := s.runner.Run(ctx, ffmpeg.Request{
			Args:    []string{"-i", item.Source.Path, "-y", dest},
			Timeout: s.timeout,
		})
		if err != nil {
			return nil, &StageError{Source: item.Source.Path, Err: err}
		}

		s.logger.Debug("staged segment",
			logging.Int("index", i),
			logging.String("source", item.Source.Path),
			logging.String("staged", name),
		)
		segments = append(segments, Segment{Index: i, Name: name, Path: dest})
	}
	return segments, nil
}
