package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// Model artifact
	ModelArtifactPath string `mapstructure:"model_artifact_path"`

	// HTTP surface
	CorsAllowOrigins string  `mapstructure:"cors_allow_origins"`
	RateLimitRps     float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst   int     `mapstructure:"rate_limit_burst"`

	// Observability
	TelegrafAddress  string `mapstructure:"telegraf_address"`
	ProfilingEnabled bool   `mapstructure:"profiling_enabled"`
	ProfilingPort    int    `mapstructure:"profiling_port"`

	// Tracing
	TracingEnabled           bool    `mapstructure:"tracing_enabled"`
	OtelExporterOtlpEndpoint string  `mapstructure:"otel_exporter_otlp_endpoint"`
	OtelTracesSamplerArg     float64 `mapstructure:"otel_traces_sampler_arg"`
}

type DynamicConfigs struct{}
