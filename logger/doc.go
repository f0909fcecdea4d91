// Package logger provides structured logging for statkit services built on
// zerolog. It supports JSON and console output, component tagging, and a
// package-level global logger for code that has no logger instance in scope.
package logger
