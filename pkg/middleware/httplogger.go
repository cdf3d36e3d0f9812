package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const unmatchedRoute = "unmatched"

// HTTPLogger writes one access log line per request and records request count and
// latency tagged by route template, e.g. /predict/:bhk
func HTTPLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		statusCode := c.Writer.Status()

		metricTags := metric.BuildTag(
			metric.NewTag(metric.TagPath, route),
			metric.NewTag(metric.TagMethod, method),
			metric.NewTag(metric.TagHttpStatusCode, strconv.Itoa(statusCode)),
		)
		metric.Incr(metric.ApiRequestCount, metricTags)
		metric.Timing(metric.ApiRequestLatency, latency, metricTags)

		accessEvent(statusCode).
			Str("client_ip", c.ClientIP()).
			Str("method", method).
			Str("uri", c.Request.URL.RequestURI()).
			Str("route", route).
			Int("status", statusCode).
			Int("response_bytes", c.Writer.Size()).
			Dur("latency", latency).
			Msg("[access]")
	}
}

func accessEvent(statusCode int) *zerolog.Event {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return log.Error()
	case statusCode >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
