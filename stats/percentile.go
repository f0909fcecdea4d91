package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/skillsenselab/statkit/errors"
)

// Percentile returns the p-th percentile of xs using the nearest-rank rule:
// for rank p over n sorted values the result is sorted[ceil(p/100*n)-1],
// with the index clamped to [0, n-1] so that p=0 yields the minimum and
// p=100 the maximum. No interpolation is performed; the result is always an
// element of xs.
//
// p must be in [0, 100] and xs must be non-empty. xs is not modified.
func Percentile(p float64, xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, errors.EmptyDistribution()
	}
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, errors.OutOfRange("percentile", "[0, 100]", p)
	}

	sorted := sortedCopy(xs)
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx], nil
}

// Quantile returns the p-th quantile (p in [0, 1]) of xs using linear
// interpolation between order statistics. This is the alternative convention
// to Percentile's nearest-rank rule; the two differ at small n.
//
// xs must be non-empty and is not modified.
func Quantile(p float64, xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, errors.EmptyDistribution()
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, errors.OutOfRange("quantile", "[0, 1]", p)
	}
	return stat.Quantile(p, stat.LinInterp, sortedCopy(xs), nil), nil
}
