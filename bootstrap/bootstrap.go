package bootstrap

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/sample"
	"github.com/skillsenselab/statkit/stats"
)

// DefaultRepetitions is the repetition count used when none is configured.
const DefaultRepetitions = 10000

// ctxCheckInterval is how many repetitions run between context checks.
const ctxCheckInterval = 1024

// Statistic maps a sample (or resample) to a single numeric value.
type Statistic func([]float64) float64

// Distribution is the ordered sequence of statistic values produced across
// repetitions. It is append-only during estimation and must be treated as
// immutable once Run returns.
type Distribution []float64

// Mean returns the mean of the distribution.
func (d Distribution) Mean() float64 {
	return stats.Mean(d)
}

// Percentile returns the p-th percentile of the distribution using the
// nearest-rank rule (see stats.Percentile).
func (d Distribution) Percentile(p float64) (float64, error) {
	return stats.Percentile(p, d)
}

// Estimator produces empirical distributions by bootstrap resampling.
type Estimator struct {
	repetitions int
	rng         *rand.Rand
	log         *logger.Logger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithRepetitions sets the number of resampling repetitions.
func WithRepetitions(n int) Option {
	return func(e *Estimator) { e.repetitions = n }
}

// WithSeed makes the estimator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(e *Estimator) { e.rng = sample.NewSeeded(seed) }
}

// WithSource sets a caller-supplied random source.
func WithSource(rng *rand.Rand) Option {
	return func(e *Estimator) { e.rng = rng }
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(e *Estimator) { e.log = log }
}

// New creates an Estimator. Without options it runs DefaultRepetitions
// repetitions on an auto-seeded source. A non-positive repetition count is
// rejected here rather than at Run time.
func New(opts ...Option) (*Estimator, error) {
	e := &Estimator{repetitions: DefaultRepetitions}
	for _, opt := range opts {
		opt(e)
	}
	if e.repetitions <= 0 {
		return nil, errors.InvalidRepetitions(e.repetitions)
	}
	if e.rng == nil {
		e.rng = sample.NewRand()
	}
	if e.log == nil {
		e.log = logger.WithComponent("bootstrap")
	}
	return e, nil
}

// Repetitions returns the configured repetition count.
func (e *Estimator) Repetitions() int {
	return e.repetitions
}

// Run draws one resample per repetition (uniform, with replacement, same
// length as xs), applies stat to it, and returns the statistic values in
// iteration order. The returned distribution always has exactly
// Repetitions() entries.
//
// Cancellation is observed between repetitions; a cancelled run returns no
// partial distribution.
func (e *Estimator) Run(ctx context.Context, xs []float64, stat Statistic) (Distribution, error) {
	if len(xs) == 0 {
		return nil, errors.EmptySample()
	}
	if stat == nil {
		return nil, errors.InvalidInput("statistic", "must not be nil")
	}

	start := time.Now()
	dist := make(Distribution, 0, e.repetitions)
	for i := 0; i < e.repetitions; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		resample, err := sample.WithReplacement(e.rng, xs)
		if err != nil {
			return nil, err
		}
		dist = append(dist, stat(resample))
	}

	e.log.Debug("bootstrap run complete", logger.Fields(
		logger.FieldRepetitions, e.repetitions,
		logger.FieldSampleSize, len(xs),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return dist, nil
}

// StatisticByName resolves the named summary function. Supported names are
// "mean", "median", "sum", and "stddev".
func StatisticByName(name string) (Statistic, error) {
	switch name {
	case "mean":
		return stats.Mean, nil
	case "median":
		return stats.Median, nil
	case "sum":
		return stats.Sum, nil
	case "stddev":
		return stats.StdDev, nil
	default:
		return nil, errors.InvalidInput("statistic", "must be one of: mean, median, sum, stddev").
			WithDetail("got", name)
	}
}
