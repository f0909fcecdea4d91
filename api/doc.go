// Package api exposes the statkit estimation operations over HTTP.
//
// All routes live under /api/v1 and accept JSON bodies:
//
//	POST /api/v1/estimates/bootstrap   bootstrap a statistic and its interval
//	POST /api/v1/tests/permutation     A/B permutation test
//	POST /api/v1/tests/z               two-sample z-test
//	POST /api/v1/tests/null-model      category null-model simulation
//
// Request validation uses struct tags plus service-level limits from Config
// (maximum repetitions and sample size).
package api
