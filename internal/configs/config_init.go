package configs

import (
	"log"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/config"
	"github.com/spf13/viper"
)

const (
	DefaultAppName           = "price-predictor"
	DefaultAppPort           = 8000
	DefaultModelArtifactPath = "model/bangalore_model.json"
)

// ConfigHolder interface for app config
type ConfigHolder interface {
	GetStaticConfig() interface{}
	GetDynamicConfig() interface{}
}

var keys = []string{
	"app_name",
	"app_env",
	"app_log_level",
	"app_metric_sampling_rate",
	"app_port",
	"model_artifact_path",
	"cors_allow_origins",
	"rate_limit_rps",
	"rate_limit_burst",
	"telegraf_address",
	"profiling_enabled",
	"profiling_port",
	"tracing_enabled",
	"otel_exporter_otlp_endpoint",
	"otel_traces_sampler_arg",
}

// InitConfig loads the static config from environment variables
func InitConfig(configHolder ConfigHolder) {
	config.InitEnv()

	staticConfig := configHolder.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	setDefaults()
	config.BindEnvs(keys...)
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	log.Println("Configuration loaded from environment variables")
}

func setDefaults() {
	viper.SetDefault("app_name", DefaultAppName)
	viper.SetDefault("app_log_level", "INFO")
	viper.SetDefault("app_metric_sampling_rate", 1.0)
	viper.SetDefault("app_port", DefaultAppPort)
	viper.SetDefault("model_artifact_path", DefaultModelArtifactPath)
	viper.SetDefault("cors_allow_origins", "*")
	viper.SetDefault("rate_limit_rps", 0)
	viper.SetDefault("rate_limit_burst", 0)
	viper.SetDefault("telegraf_address", "localhost:8125")
	viper.SetDefault("otel_traces_sampler_arg", 0.1)
}
