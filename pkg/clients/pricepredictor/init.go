package pricepredictor

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	client *ClientV1
	once   sync.Once
)

// InitClient builds the process-wide client from viper configuration
func InitClient() Client {
	if client == nil {
		once.Do(func() {
			clientConfig, err := getClientConfigs()
			if err != nil {
				log.Panic().Err(err).Msgf("Invalid price-predictor client configs: %#v", clientConfig)
			}
			client = NewClientFromConfig(*clientConfig)
			log.Info().Str("base_url", clientConfig.BaseURL).Msg("price-predictor client initialized")
		})
	}
	return client
}

// NewClientFromConfig builds a client without touching global state. Deadlines come
// from the per-call timeouts, so the http.Client itself has none. Outgoing requests carry
// the caller's trace context.
func NewClientFromConfig(conf ClientConfig) *ClientV1 {
	return &ClientV1{
		ClientConfigs: &conf,
		HTTPClient:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}
