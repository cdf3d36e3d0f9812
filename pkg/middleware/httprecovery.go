package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/api"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPRecovery renders errors attached with ctx.Error and turns panics into a 500
func HTTPRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Msgf("Panic occurred: %v\n%s", err, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, contracts.ErrorResponse{
					Detail: fmt.Sprintf("%v", err),
				})
				return
			}
			if len(c.Errors) == 0 || c.Writer.Written() {
				return
			}
			err := c.Errors.Last().Err
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				c.AbortWithStatusJSON(apiErr.StatusCode, contracts.ErrorResponse{
					Detail: apiErr.Message,
					Errors: apiErr.Details,
				})
				return
			}
			log.Error().Err(err).Msg("Unhandled request error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, contracts.ErrorResponse{Detail: err.Error()})
		}()
		c.Next()
	}
}
