package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"stitch/internal/concat"
	"stitch/internal/config"
	"stitch/internal/deps"
	"stitch/internal/discovery"
	"stitch/internal/ffmpeg"
	"stitch/internal/history"
	"stitch/internal/logging"
	"stitch/internal/manifest"
	"stitch/internal/ordering"
	"stitch/internal/silence"
	"stitch/internal/staging"
)

// manifestName is the join specification file inside the staging area.
const manifestName = "concat_list.txt"

// Pipeline runs the full combine sequence against one input set.
type Pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	runner    ffmpeg.Runner
	store     *history.Store
	rng       *rand.Rand
	onOrdered func([]ordering.Keyed)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRunner overrides the default CLI runner. Tests inject fakes here.
func WithRunner(runner ffmpeg.Runner) Option {
	return func(p *Pipeline) {
		if runner != nil {
			p.runner = runner
		}
	}
}

// WithHistory records each finished run in the given ledger.
func WithHistory(store *history.Store) Option {
	return func(p *Pipeline) { p.store = store }
}

// WithRand injects the random source feeding pause durations.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pipeline) { p.rng = rng }
}

// WithOrderedHook registers a callback invoked with the ordered input set
// before staging begins. The CLI uses it to print the diagnostics table.
func WithOrderedHook(fn func([]ordering.Keyed)) Option {
	return func(p *Pipeline) { p.onOrdered = fn }
}

// New assembles a Pipeline for the given configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		runner: ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result summarizes a finished run.
type Result struct {
	State        State
	FailedAt     State
	SegmentCount int
	PauseSeconds float64
	OutputPath   string
}

// Run executes the pipeline once. The returned Result always carries a
// terminal state; err is non-nil exactly when that state is StateFailed.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	started := time.Now()
	result, err := p.run(ctx)
	p.record(ctx, started, result, err)
	return result, err
}

func (p *Pipeline) run(ctx context.Context) (Result, error) {
	var result Result
	state := StateIdle
	advance := func(next State) {
		state = next
		p.logger.Debug("stage started", logging.String("stage", string(state)))
	}
	fail := func(err error) (Result, error) {
		result.State = StateFailed
		result.FailedAt = state
		p.logger.Error("stage failed",
			logging.String("stage", string(state)),
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.Error(err),
		)
		return result, err
	}

	advance(StateValidating)
	avail := deps.Probe(ctx, p.runner, p.timeout(p.cfg.Timeouts.Probe))
	if !avail.Available {
		return fail(Wrap(ErrToolUnavailable, state, "probe ffmpeg", avail.Detail, nil))
	}
	p.logger.Debug("ffmpeg available", logging.String("version", avail.Version))

	advance(StateDiscovering)
	sources, err := discovery.Discover(p.cfg.Paths.InputDir, p.cfg.Audio.Extension)
	if err != nil {
		marker := ErrUnexpectedFailure
		switch {
		case errors.Is(err, discovery.ErrNotFound):
			marker = ErrInputNotFound
		case errors.Is(err, discovery.ErrEmpty):
			marker = ErrEmptyInputSet
		}
		return fail(Wrap(marker, state, "list inputs", "", err))
	}
	p.logger.Info("discovered inputs",
		logging.Int("count", len(sources)),
		logging.String("input_dir", p.cfg.Paths.InputDir),
	)

	advance(StateOrdering)
	ordered, err := ordering.Sort(sources)
	if err != nil {
		return fail(Wrap(ErrAmbiguousOrdering, state, "extract ordering keys", "", err))
	}
	if p.onOrdered != nil {
		p.onOrdered(ordered)
	}

	advance(StateStaging)
	area, err := staging.Acquire(p.cfg.Paths.StagingDir, p.logger)
	if err != nil {
		return fail(Wrap(ErrStagingFailure, state, "acquire staging area", "", err))
	}
	defer area.Release()

	stager := staging.NewStager(p.runner, p.timeout(p.cfg.Timeouts.Stage), p.cfg.Audio.Extension, p.logger)
	segments, err := stager.Stage(ctx, area, ordered)
	if err != nil {
		return fail(Wrap(ErrStagingFailure, state, "stage segments", "", err))
	}
	result.SegmentCount = len(segments)

	advance(StateSynthesizingPauses)
	synth := silence.NewSynthesizer(p.runner, silence.Options{
		Timeout:       p.timeout(p.cfg.Timeouts.Silence),
		SampleRate:    p.cfg.Audio.SampleRate,
		ChannelLayout: p.cfg.Audio.ChannelLayout,
		MinSeconds:    p.cfg.Audio.MinPauseSeconds,
		MaxSeconds:    p.cfg.Audio.MaxPauseSeconds,
		Extension:     p.cfg.Audio.Extension,
		Rand:          p.rng,
		Logger:        p.logger,
	})
	clips, err := synth.Synthesize(ctx, area.Dir(), len(segments)-1)
	if err != nil {
		return fail(Wrap(ErrSynthesisFailure, state, "generate pauses", "", err))
	}
	for _, clip := range clips {
		result.PauseSeconds += clip.DurationSeconds
	}

	advance(StateBuildingManifest)
	m, err := manifest.Build(segments, clips)
	if err != nil {
		return fail(Wrap(ErrManifestInvariant, state, "build manifest", "", err))
	}
	manifestPath := area.Path(manifestName)
	if err := m.WriteFile(manifestPath); err != nil {
		return fail(Wrap(ErrUnexpectedFailure, state, "write manifest", "", err))
	}

	advance(StateConcatenating)
	engine := concat.NewEngine(p.runner, p.timeout(p.cfg.Timeouts.Concat), p.logger)
	if err := engine.Concatenate(ctx, manifestPath, p.cfg.Paths.OutputFile); err != nil {
		return fail(Wrap(ErrConcatenationFailure, state, "join segments", "", err))
	}
	result.OutputPath = p.cfg.Paths.OutputFile

	result.State = StateDone
	p.logger.Info("pipeline completed",
		logging.String(logging.FieldEventType, "pipeline_complete"),
		logging.Int("segments", result.SegmentCount),
		logging.Float64("pause_seconds", result.PauseSeconds),
		logging.String("output", result.OutputPath),
	)
	return result, nil
}

func (p *Pipeline) timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// record appends the finished run to the history ledger, best effort.
func (p *Pipeline) record(ctx context.Context, started time.Time, result Result, runErr error) {
	if p.store == nil {
		return
	}
	rec := &history.Record{
		StartedAt:    started,
		FinishedAt:   time.Now(),
		State:        string(result.State),
		FailedStage:  string(result.FailedAt),
		SegmentCount: result.SegmentCount,
		PauseSeconds: result.PauseSeconds,
		OutputPath:   result.OutputPath,
	}
	if runErr != nil {
		rec.ErrorMessage = runErr.Error()
	}
	if err := p.store.Add(ctx, rec); err != nil {
		p.logger.Warn("failed to record run history",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, fmt.Sprintf("check %s", p.store.Path())),
		)
	}
}
