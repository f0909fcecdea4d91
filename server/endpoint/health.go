package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Component health statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ComponentHealth reports the health of a single service component.
type ComponentHealth struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker returns health status for registered components.
type HealthChecker func(ctx context.Context) []ComponentHealth

// Health returns a handler that reports service health including component
// statuses.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := StatusHealthy
		var components []ComponentHealth

		if checker != nil {
			components = checker(c.Request.Context())
			for _, ch := range components {
				if ch.Status == StatusUnhealthy {
					status = StatusUnhealthy
					break
				}
				if ch.Status == StatusDegraded && status != StatusUnhealthy {
					status = StatusDegraded
				}
			}
		}

		httpStatus := http.StatusOK
		if status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
