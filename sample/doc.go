// Package sample provides the random drawing primitives behind statkit's
// resampling procedures: uniform resampling with replacement, permutations,
// and category draws from a discrete distribution.
//
// Every function takes an explicit *rand.Rand. There is no package-level
// random state; callers choose between a seeded source (reproducible runs,
// tests) and an auto-seeded one (production) via NewSeeded and NewRand.
package sample
