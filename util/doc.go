// Package util contains small shared helpers that do not belong to any
// single statkit package.
package util
