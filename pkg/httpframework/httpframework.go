package httpframework

import (
	"net/http"
	"sync"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const defaultServiceName = "price-predictor"

var (
	router *gin.Engine
	once   sync.Once
)

// Init builds the shared gin engine. Caller middlewares run first, then tracing, the access
// logger and the recovery that renders errors. Unknown paths and methods answer in the same
// {"detail": ...} shape as every other error.
func Init(middlewares ...gin.HandlerFunc) {
	once.Do(func() {
		if isProduction(viper.GetString("app_env")) {
			gin.SetMode(gin.ReleaseMode)
		}
		serviceName := viper.GetString("app_name")
		if serviceName == "" {
			serviceName = defaultServiceName
		}
		router = gin.New()
		router.HandleMethodNotAllowed = true
		middlewares = append(middlewares, otelgin.Middleware(serviceName), middleware.HTTPLogger(), middleware.HTTPRecovery())
		router.Use(middlewares...)
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, contracts.ErrorResponse{Detail: "Not Found"})
		})
		router.NoMethod(func(c *gin.Context) {
			c.JSON(http.StatusMethodNotAllowed, contracts.ErrorResponse{Detail: "Method Not Allowed"})
		})
	})
}

// Instance returns the httpframework instance
func Instance() *gin.Engine {
	if router == nil {
		log.Fatal().Msg("Router not initialized")
	}
	return router
}

// ResetForTesting resets the global state for testing purposes
// This function should only be used in tests
func ResetForTesting() {
	router = nil
	once = sync.Once{}
}

func isProduction(env string) bool {
	return env == "prod" || env == "production"
}
