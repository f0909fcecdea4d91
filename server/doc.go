// Package server provides the HTTP server for statkit services using Gin
// with HTTP/2 (h2c) support, so REST and any other http.Handler can share
// one port.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - Logging: request logging with duration tracking
//   - CORS: cross-origin resource sharing configuration
//   - RequestID: request ID generation and propagation
//   - BodySize: request body size limits
//   - Auth: bearer-token authentication
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: health check aggregation
//   - /info: build and version information
//   - /metrics: runtime memory and goroutine metrics
//   - /alive, /ready: Kubernetes probes
package server
