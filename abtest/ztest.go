package abtest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/stats"
)

// ZResult holds the outcome of a two-sample z-test.
type ZResult struct {
	// Observed is the difference of group means, mean(a) - mean(b).
	Observed float64 `json:"observed"`
	// Z is the observed difference in standard-error units.
	Z float64 `json:"z"`
	// PValue is the two-sided p-value under the normal approximation.
	PValue float64 `json:"p_value"`
}

// ZTest compares two group means using the normal approximation: the
// standard error is computed from the sample variances, and the p-value is
// two-sided. Both groups need at least two observations; for small groups
// prefer the permutation test, which makes no distributional assumption.
func ZTest(a, b []float64) (ZResult, error) {
	if len(a) < 2 {
		return ZResult{}, errors.InvalidInput("group_a", "needs at least two observations for a z-test")
	}
	if len(b) < 2 {
		return ZResult{}, errors.InvalidInput("group_b", "needs at least two observations for a z-test")
	}

	observed := stats.DiffOfMeans(a, b)
	se := math.Sqrt(stats.Variance(a)/float64(len(a)) + stats.Variance(b)/float64(len(b)))
	if se == 0 {
		return ZResult{}, errors.InvalidInput("groups", "have zero variance; z-test is undefined")
	}

	z := observed / se
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * norm.CDF(-math.Abs(z))

	return ZResult{Observed: observed, Z: z, PValue: p}, nil
}
