package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/statkit/util"
)

const defaultMaxBodySize = 4 * 1024 * 1024 // 4MB

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "4MB", "512KB", "1GB").
func BodySizeLimit(maxSize string) Middleware {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}

// GinBodySizeLimit returns a Gin middleware for body size limiting.
func GinBodySizeLimit(maxSize string) gin.HandlerFunc {
	return GinWrap(BodySizeLimit(maxSize))
}
