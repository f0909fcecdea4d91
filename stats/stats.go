package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/skillsenselab/statkit/errors"
)

// Mean returns the arithmetic mean of xs. It returns NaN for an empty slice.
func Mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

// Sum returns the sum of xs. An empty slice sums to zero.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// Median returns the middle value of xs (mean of the two middle values for
// even lengths). It returns NaN for an empty slice. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := sortedCopy(xs)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// StdDev returns the sample standard deviation of xs (n-1 denominator).
// It returns NaN for slices with fewer than two values.
func StdDev(xs []float64) float64 {
	return stat.StdDev(xs, nil)
}

// Variance returns the sample variance of xs (n-1 denominator).
// It returns NaN for slices with fewer than two values.
func Variance(xs []float64) float64 {
	return stat.Variance(xs, nil)
}

// DiffOfMeans returns mean(a) - mean(b), the test statistic used for
// comparing two groups.
func DiffOfMeans(a, b []float64) float64 {
	return Mean(a) - Mean(b)
}

// TVD returns the total variation distance between two category
// distributions: half the sum of absolute differences of the proportions.
// The distributions must have the same number of categories.
func TVD(p, q []float64) (float64, error) {
	if len(p) == 0 {
		return 0, errors.InvalidInput("distribution", "must contain at least one category")
	}
	if len(p) != len(q) {
		return 0, errors.InvalidInput("distribution", "category counts must match").
			WithDetail("len_p", len(p)).
			WithDetail("len_q", len(q))
	}
	var sum float64
	for i := range p {
		sum += math.Abs(p[i] - q[i])
	}
	return sum / 2, nil
}

// sortedCopy returns xs sorted ascending without modifying the input.
func sortedCopy(xs []float64) []float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return sorted
}
