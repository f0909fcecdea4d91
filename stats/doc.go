// Package stats provides the numeric summary functions used across statkit:
// means, medians, spread, percentiles, and the comparison statistics used by
// the resampling packages (difference of group means, total variation
// distance).
//
// Two percentile conventions are exposed and both are pinned by tests:
//
//   - Percentile uses the nearest-rank rule: for rank p over n sorted values
//     the result is sorted[ceil(p/100*n)-1]. This is the convention used by
//     the estimation endpoints and the confidence interval constructor.
//   - Quantile uses linear interpolation between order statistics
//     (gonum's stat.Quantile with LinInterp). The two disagree at small n.
package stats
