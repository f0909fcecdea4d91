package bootstrap

import (
	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/stats"
)

// Interval is a confidence interval over an empirical distribution.
type Interval struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Level float64 `json:"confidence_level"`
}

// ConfidenceInterval computes the central level% interval of dist using the
// percentile method: the bounds are the (100-level)/2 and 100-(100-level)/2
// percentiles under the nearest-rank rule. level is a percentage in the open
// interval (0, 100), e.g. 95.
//
// Low <= High holds for every valid level because both bounds come from the
// same sorted order.
func ConfidenceInterval(dist Distribution, level float64) (Interval, error) {
	if len(dist) == 0 {
		return Interval{}, errors.EmptyDistribution()
	}
	if level <= 0 || level >= 100 {
		return Interval{}, errors.ConfidenceOutOfRange(level)
	}

	pLow := (100 - level) / 2
	pHigh := 100 - pLow

	low, err := stats.Percentile(pLow, dist)
	if err != nil {
		return Interval{}, err
	}
	high, err := stats.Percentile(pHigh, dist)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Low: low, High: high, Level: level}, nil
}
