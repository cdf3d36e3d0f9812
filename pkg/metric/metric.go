package metric

import (
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"
)

const (
	ApiRequestCount           = "api_request_count"
	ApiRequestLatency         = "api_request_latency"
	ExternalApiRequestCount   = "external_api_request_count"
	ExternalApiRequestLatency = "external_api_request_latency"
	PredictionRequestCount    = "prediction_request_count"
	PredictionRequest4xx      = "prediction_request_4xx"
	PredictionFailureCount    = "prediction_failure_count"
	PredictorLatency          = "predictor_latency"
	PredictedPriceLakhs       = "predicted_price_lakhs"
)

var (
	// it is safe to use one client from multiple goroutines simultaneously
	statsDClient = getDefaultClient()
	// by default full sampling
	samplingRate = 1.0
	appName      = ""
	initialized  = false
	once         sync.Once
)

// Config carries what the metrics client needs from the app configuration
type Config struct {
	AppName         string
	AppEnv          string
	SamplingRate    float64
	TelegrafAddress string
}

// Init initializes the metrics client
func Init(config Config) {
	if initialized {
		log.Debug().Msgf("Metrics already initialized!")
		return
	}
	once.Do(func() {
		if config.SamplingRate > 0 {
			samplingRate = config.SamplingRate
		}
		appName = config.AppName
		address := config.TelegrafAddress
		if address == "" {
			address = "localhost:8125"
		}
		globalTags := getGlobalTags(config)

		client, err := statsd.New(address, statsd.WithTags(globalTags))
		if err != nil {
			log.Panic().Err(err).Msg("StatsD client initialization failed")
		}
		statsDClient = client
		log.Info().Msgf("Metrics client initialized with telegraf address - %s, global tags - %v, and "+
			"sampling rate - %f", address, globalTags, samplingRate)
		initialized = true
	})
}

func getDefaultClient() statsd.ClientInterface {
	client, err := statsd.New("localhost:8125")
	if err != nil {
		return &statsd.NoOpClient{}
	}
	return client
}

func getGlobalTags(config Config) []string {
	if len(config.AppEnv) == 0 {
		log.Warn().Msg("APP_ENV is not set")
	}
	if len(config.AppName) == 0 {
		log.Warn().Msg("APP_NAME is not set")
	}
	return []string{
		TagAsString(TagEnv, config.AppEnv),
		TagAsString(TagService, config.AppName),
	}
}

// Timing sends timing information
func Timing(name string, value time.Duration, tags []string) {
	tags = append(tags, TagAsString(TagService, appName))
	if err := statsDClient.Timing(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msg("Error occurred while doing statsd timing")
	}
}

// Count increases metric counter by value
func Count(name string, value int64, tags []string) {
	tags = append(tags, TagAsString(TagService, appName))
	if err := statsDClient.Count(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msg("Error occurred while doing statsd count")
	}
}

// Incr increases metric counter by 1
func Incr(name string, tags []string) {
	Count(name, 1, tags)
}

func Gauge(name string, value float64, tags []string) {
	tags = append(tags, TagAsString(TagService, appName))
	if err := statsDClient.Gauge(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msg("Error occurred while doing statsd gauge")
	}
}

// Distribution tracks the statistical distribution of a value across hosts
func Distribution(name string, value float64, tags []string) {
	tags = append(tags, TagAsString(TagService, appName))
	if err := statsDClient.Distribution(name, value, tags, samplingRate); err != nil {
		log.Warn().Err(err).Msg("Error occurred while doing statsd distribution")
	}
}
