// Package abtest compares two groups of observations. The primary tool is a
// permutation test: under the null hypothesis that group labels do not
// matter, the pooled observations are repeatedly shuffled and re-split to
// build the null distribution of the difference of group means, from which
// an empirical p-value is computed. A z-test using the normal approximation
// is provided for large samples.
package abtest
