package abtest

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/skillsenselab/statkit/bootstrap"
	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/sample"
	"github.com/skillsenselab/statkit/stats"
)

// ctxCheckInterval is how many repetitions run between context checks.
const ctxCheckInterval = 1024

// Alternative selects the tail(s) of the null distribution counted toward
// the p-value.
type Alternative string

const (
	// TwoSided counts simulated differences at least as extreme in absolute
	// value as the observed difference.
	TwoSided Alternative = "two_sided"
	// Greater counts simulated differences >= the observed difference.
	Greater Alternative = "greater"
	// Less counts simulated differences <= the observed difference.
	Less Alternative = "less"
)

// Result holds the outcome of a permutation test.
type Result struct {
	// Observed is the difference of group means, mean(a) - mean(b).
	Observed float64 `json:"observed"`
	// PValue is the fraction of simulated differences at least as extreme
	// as Observed under the chosen alternative.
	PValue float64 `json:"p_value"`
	// Repetitions is the number of label shuffles performed.
	Repetitions int `json:"repetitions"`
	// Null is the simulated null distribution of the test statistic.
	Null bootstrap.Distribution `json:"-"`
}

// Tester runs permutation tests.
type Tester struct {
	repetitions int
	alternative Alternative
	rng         *rand.Rand
	log         *logger.Logger
}

// Option configures a Tester.
type Option func(*Tester)

// WithRepetitions sets the number of label shuffles.
func WithRepetitions(n int) Option {
	return func(t *Tester) { t.repetitions = n }
}

// WithSeed makes the tester deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(t *Tester) { t.rng = sample.NewSeeded(seed) }
}

// WithAlternative selects the alternative hypothesis (default TwoSided).
func WithAlternative(alt Alternative) Option {
	return func(t *Tester) { t.alternative = alt }
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(t *Tester) { t.log = log }
}

// New creates a Tester. Without options it runs bootstrap.DefaultRepetitions
// shuffles, two-sided, on an auto-seeded source.
func New(opts ...Option) (*Tester, error) {
	t := &Tester{
		repetitions: bootstrap.DefaultRepetitions,
		alternative: TwoSided,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.repetitions <= 0 {
		return nil, errors.InvalidRepetitions(t.repetitions)
	}
	switch t.alternative {
	case TwoSided, Greater, Less:
	default:
		return nil, errors.InvalidInput("alternative", "must be one of: two_sided, greater, less").
			WithDetail("got", string(t.alternative))
	}
	if t.rng == nil {
		t.rng = sample.NewRand()
	}
	if t.log == nil {
		t.log = logger.WithComponent("abtest")
	}
	return t, nil
}

// Run performs the permutation test on groups a and b. Both groups must be
// non-empty. Cancellation is observed between repetitions.
func (t *Tester) Run(ctx context.Context, a, b []float64) (Result, error) {
	if len(a) == 0 {
		return Result{}, errors.InvalidInput("group_a", "must contain at least one observation")
	}
	if len(b) == 0 {
		return Result{}, errors.InvalidInput("group_b", "must contain at least one observation")
	}

	observed := stats.DiffOfMeans(a, b)

	pooled := make([]float64, 0, len(a)+len(b))
	pooled = append(pooled, a...)
	pooled = append(pooled, b...)

	start := time.Now()
	null := make(bootstrap.Distribution, 0, t.repetitions)
	extreme := 0
	for i := 0; i < t.repetitions; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		shuffled := sample.Permutation(t.rng, pooled)
		sim := stats.DiffOfMeans(shuffled[:len(a)], shuffled[len(a):])
		null = append(null, sim)
		if t.isExtreme(sim, observed) {
			extreme++
		}
	}

	t.log.Debug("permutation test complete", logger.Fields(
		logger.FieldRepetitions, t.repetitions,
		logger.FieldSampleSize, len(pooled),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return Result{
		Observed:    observed,
		PValue:      float64(extreme) / float64(t.repetitions),
		Repetitions: t.repetitions,
		Null:        null,
	}, nil
}

// isExtreme reports whether a simulated difference counts toward the p-value.
func (t *Tester) isExtreme(sim, observed float64) bool {
	switch t.alternative {
	case Greater:
		return sim >= observed
	case Less:
		return sim <= observed
	default:
		return math.Abs(sim) >= math.Abs(observed)
	}
}
