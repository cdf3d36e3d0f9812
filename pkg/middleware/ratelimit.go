package middleware

import (
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/api"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter admits at most rps requests per second with the given burst across all
// callers. A non-positive rps disables limiting.
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			_ = c.Error(api.NewTooManyRequests("Too many requests, retry later"))
			c.Abort()
			return
		}
		c.Next()
	}
}
