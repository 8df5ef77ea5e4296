package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Geometry routes pay for grid construction on a cache miss, so they get
// their own limiter on top of the global one.
const geometryRequestsPerSec = 20

// RateLimit rejects requests beyond limit with 429. Burst is sized
// separately so the frontend's initial fan-out of catalog calls is not
// penalized by a low steady-state rate.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
