package middleware

import (
	"net/http"
	"time"

	"github.com/skillsenselab/statkit/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Health-check paths are silently skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.status,
				"duration_ms": duration.Milliseconds(),
			}
			if id := r.Header.Get("X-Request-Id"); id != "" {
				fields["request_id"] = id
			}

			logByStatus(log, fields, sw.status)
		})
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready", "/metrics":
		return true
	}
	return false
}

// logByStatus logs request fields at the appropriate level based on HTTP
// status code. If log is nil, the global logger is used.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	logErr := logger.Error
	logWarn := logger.Warn
	logDebug := logger.Debug
	if log != nil {
		logErr = log.Error
		logWarn = log.Warn
		logDebug = log.Debug
	}

	switch {
	case status >= 500:
		logErr("Request completed", fields)
	case status >= 400:
		logWarn("Request completed", fields)
	default:
		logDebug("Request completed", fields)
	}
}
