package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/skillsenselab/statkit/errors"
)

// NewSeeded returns a deterministic PCG-backed source for the given seed.
// Two generators built from the same seed produce identical draw sequences.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewRand returns an auto-seeded source for non-reproducible production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// WithReplacement draws len(xs) observations from xs uniformly at random
// with replacement. The result always has the same length as xs; drawing
// from an empty sample is undefined and returns an error.
func WithReplacement(rng *rand.Rand, xs []float64) ([]float64, error) {
	n := len(xs)
	if n == 0 {
		return nil, errors.EmptySample()
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xs[rng.IntN(n)]
	}
	return out, nil
}

// Permutation returns a shuffled copy of xs (sampling without replacement).
// xs is not modified.
func Permutation(rng *rand.Rand, xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// CategoricalCounts draws n observations from the category distribution
// described by weights and returns how many draws landed in each category.
// Weights must be non-negative with a positive sum; they need not be
// normalized.
func CategoricalCounts(rng *rand.Rand, n int, weights []float64) ([]float64, error) {
	if n <= 0 {
		return nil, errors.OutOfRange("draws", "[1, ∞)", n)
	}
	if len(weights) == 0 {
		return nil, errors.InvalidInput("weights", "must contain at least one category")
	}
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return nil, errors.InvalidInput("weights", "must be non-negative").WithDetail("index", i)
		}
		sum += w
	}
	if sum == 0 {
		return nil, errors.InvalidInput("weights", "must have a positive sum")
	}

	dist := distuv.NewCategorical(weights, rng)
	counts := make([]float64, len(weights))
	for i := 0; i < n; i++ {
		counts[int(dist.Rand())]++
	}
	return counts, nil
}

// Proportions converts category counts to proportions summing to one.
// A zero total yields all-zero proportions.
func Proportions(counts []float64) []float64 {
	var total float64
	for _, c := range counts {
		total += c
	}
	out := make([]float64, len(counts))
	if total == 0 {
		return out
	}
	for i, c := range counts {
		out[i] = c / total
	}
	return out
}
