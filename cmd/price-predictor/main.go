package main

import (
	"context"
	"strconv"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/configs"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/model"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/route"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/httpframework"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/logger"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/middleware"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/profiling"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/tracing"
	"github.com/rs/zerolog/log"
	_ "go.uber.org/automaxprocs"
)

type AppConfig struct {
	Configs        configs.Configs
	DynamicConfigs configs.DynamicConfigs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func (cfg *AppConfig) GetDynamicConfig() interface{} {
	return &cfg.DynamicConfigs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)
	logger.Init(appConfig.Configs.AppName, appConfig.Configs.AppLogLevel)
	metric.Init(metric.Config{
		AppName:         appConfig.Configs.AppName,
		AppEnv:          appConfig.Configs.AppEnv,
		SamplingRate:    appConfig.Configs.AppMetricSamplingRate,
		TelegrafAddress: appConfig.Configs.TelegrafAddress,
	})
	profiling.Init(profiling.Config{
		Enabled: appConfig.Configs.ProfilingEnabled,
		Port:    appConfig.Configs.ProfilingPort,
	})
	tracing.Init(tracing.Config{
		Enabled:       appConfig.Configs.TracingEnabled,
		ServiceName:   appConfig.Configs.AppName,
		Endpoint:      appConfig.Configs.OtelExporterOtlpEndpoint,
		SamplingRatio: appConfig.Configs.OtelTracesSamplerArg,
	})
	defer tracing.Shutdown(context.Background())

	// The model must be in memory before anything listens
	state, err := model.NewState(appConfig.Configs.ModelArtifactPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot start price-predictor without a model")
	}

	httpframework.Init(middleware.CORS(appConfig.Configs.CorsAllowOrigins))
	route.Init(
		handler.InitPredictionHandler(state),
		middleware.RateLimiter(appConfig.Configs.RateLimitRps, appConfig.Configs.RateLimitBurst),
	)

	port := appConfig.Configs.AppPort
	if port == 0 {
		port = configs.DefaultAppPort
		log.Warn().Int("port", port).Msgf("App port not set, defaulting to %d", port)
	}
	log.Info().Msgf("Serving %s model on port %d", state.ModelType(), port)
	if err := httpframework.Instance().Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped")
	}
}
