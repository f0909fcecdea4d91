package hypothesis

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/skillsenselab/statkit/bootstrap"
	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/sample"
	"github.com/skillsenselab/statkit/stats"
)

// ctxCheckInterval is how many repetitions run between context checks.
const ctxCheckInterval = 256

// Result holds the outcome of a null-model simulation.
type Result struct {
	// Observed is the TVD between the observed sample and the model, when
	// an observed sample was supplied.
	Observed float64 `json:"observed,omitempty"`
	// PValue is the fraction of simulated distances >= Observed. It is
	// meaningful only when an observed sample was supplied.
	PValue float64 `json:"p_value,omitempty"`
	// Repetitions is the number of simulated samples drawn.
	Repetitions int `json:"repetitions"`
	// Null is the simulated null distribution of the TVD statistic.
	Null bootstrap.Distribution `json:"-"`
}

// Simulator draws samples from a category null model.
type Simulator struct {
	model       []float64
	draws       int
	repetitions int
	rng         *rand.Rand
	log         *logger.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRepetitions sets the number of simulated samples.
func WithRepetitions(n int) Option {
	return func(s *Simulator) { s.repetitions = n }
}

// WithSeed makes the simulator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) { s.rng = sample.NewSeeded(seed) }
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(s *Simulator) { s.log = log }
}

// New creates a Simulator for a null model given as category proportions
// (non-negative, positive sum; normalized internally) and a per-sample draw
// count. Without options it runs bootstrap.DefaultRepetitions repetitions on
// an auto-seeded source.
func New(model []float64, draws int, opts ...Option) (*Simulator, error) {
	if len(model) < 2 {
		return nil, errors.InvalidInput("model", "needs at least two categories")
	}
	var sum float64
	for i, w := range model {
		if w < 0 {
			return nil, errors.InvalidInput("model", "proportions must be non-negative").WithDetail("index", i)
		}
		sum += w
	}
	if sum == 0 {
		return nil, errors.InvalidInput("model", "proportions must have a positive sum")
	}
	if draws <= 0 {
		return nil, errors.OutOfRange("draws", "[1, ∞)", draws)
	}

	s := &Simulator{
		model:       sample.Proportions(model),
		draws:       draws,
		repetitions: bootstrap.DefaultRepetitions,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.repetitions <= 0 {
		return nil, errors.InvalidRepetitions(s.repetitions)
	}
	if s.rng == nil {
		s.rng = sample.NewRand()
	}
	if s.log == nil {
		s.log = logger.WithComponent("hypothesis")
	}
	return s, nil
}

// Run simulates the null distribution of the TVD statistic. observedCounts,
// when non-nil, must have one count per model category; the result then
// includes the observed TVD and its p-value. Cancellation is observed
// between repetitions.
func (s *Simulator) Run(ctx context.Context, observedCounts []float64) (Result, error) {
	var observed float64
	hasObserved := observedCounts != nil
	if hasObserved {
		var err error
		observed, err = stats.TVD(sample.Proportions(observedCounts), s.model)
		if err != nil {
			return Result{}, err
		}
	}

	start := time.Now()
	null := make(bootstrap.Distribution, 0, s.repetitions)
	extreme := 0
	for i := 0; i < s.repetitions; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		counts, err := sample.CategoricalCounts(s.rng, s.draws, s.model)
		if err != nil {
			return Result{}, err
		}
		tvd, err := stats.TVD(sample.Proportions(counts), s.model)
		if err != nil {
			return Result{}, err
		}
		null = append(null, tvd)
		if hasObserved && tvd >= observed {
			extreme++
		}
	}

	s.log.Debug("null-model simulation complete", logger.Fields(
		logger.FieldRepetitions, s.repetitions,
		logger.FieldSampleSize, s.draws,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	res := Result{Repetitions: s.repetitions, Null: null}
	if hasObserved {
		res.Observed = observed
		res.PValue = float64(extreme) / float64(s.repetitions)
	}
	return res, nil
}
