package analysis

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdesign/dsm"
	"github.com/katalvlaran/lvdesign/requirements"
)

// Recorder receives per-analysis instrumentation; *metrics.Recorder
// implements it.
type Recorder interface {
	RecordAnalysis(valid bool, parts int, duration time.Duration)
	RecordError(reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAnalysis(bool, int, time.Duration) {}
func (nopRecorder) RecordError(string)                      {}

// Option configures an Analyzer.
type Option func(*Options)

// Options holds the Analyzer configuration.
type Options struct {
	logger       *zap.Logger
	recorder     Recorder
	requirements []requirements.Option
	complexity   []dsm.Option
	now          func() time.Time
}

// DefaultOptions logs nothing, records nothing and uses the default
// tolerance, complexity weights and wall clock.
func DefaultOptions() Options {
	return Options{
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
		now:      time.Now,
	}
}

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics sink. nil keeps the no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithTolerance sets the requirements positioning tolerance (LDU).
// Panics on a negative or non-finite tolerance.
func WithTolerance(tol float64) Option {
	return WithRequirements(requirements.WithTolerance(tol))
}

// WithRequirements forwards options to the requirements validator.
func WithRequirements(opts ...requirements.Option) Option {
	return func(o *Options) { o.requirements = append(o.requirements, opts...) }
}

// WithComplexity forwards complexity weights to the DSM engine.
func WithComplexity(opts ...dsm.Option) Option {
	return func(o *Options) { o.complexity = append(o.complexity, opts...) }
}

// WithClock sets the timestamp source of new designs.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.now = now
		}
	}
}
