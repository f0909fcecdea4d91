// Package bootstrap implements percentile-bootstrap estimation: it
// repeatedly resamples an observed sample with replacement, applies a
// statistic to each resample, and aggregates the resulting empirical
// distribution into a confidence interval.
//
// The randomness source is explicit configuration: WithSeed gives
// reproducible runs (identical inputs and seed produce an identical
// distribution), the default is an auto-seeded source. An Estimator owns its
// generator and is not safe for concurrent use; create one per goroutine.
package bootstrap
