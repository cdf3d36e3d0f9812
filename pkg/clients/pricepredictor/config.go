package pricepredictor

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Prefix namespaces the client's own keys
	Prefix = "PRICE_PREDICTOR_CLIENT_"

	APIURLKey         = "API_URL"
	ProbeTimeoutKey   = Prefix + "PROBE_TIMEOUT_MS"
	InfoTimeoutKey    = Prefix + "INFO_TIMEOUT_MS"
	PredictTimeoutKey = Prefix + "PREDICT_TIMEOUT_MS"

	DefaultAPIURL           = "http://127.0.0.1:8000"
	DefaultProbeTimeoutMS   = 5000
	DefaultInfoTimeoutMS    = 8000
	DefaultPredictTimeoutMS = 12000
)

// ClientConfig points the client at a service and bounds each kind of call
type ClientConfig struct {
	BaseURL          string
	ProbeTimeoutMS   int
	InfoTimeoutMS    int
	PredictTimeoutMS int
}

func (c *ClientConfig) probeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

func (c *ClientConfig) infoTimeout() time.Duration {
	return time.Duration(c.InfoTimeoutMS) * time.Millisecond
}

func (c *ClientConfig) predictTimeout() time.Duration {
	return time.Duration(c.PredictTimeoutMS) * time.Millisecond
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", APIURLKey, c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s %q: expected http(s)://host[:port]", APIURLKey, c.BaseURL)
	}
	for key, ms := range map[string]int{
		ProbeTimeoutKey:   c.ProbeTimeoutMS,
		InfoTimeoutKey:    c.InfoTimeoutMS,
		PredictTimeoutKey: c.PredictTimeoutMS,
	} {
		if ms <= 0 {
			return fmt.Errorf("%s must be positive, got %d", key, ms)
		}
	}
	return nil
}

func getClientConfigs() (*ClientConfig, error) {
	viper.SetDefault(APIURLKey, DefaultAPIURL)
	viper.SetDefault(ProbeTimeoutKey, DefaultProbeTimeoutMS)
	viper.SetDefault(InfoTimeoutKey, DefaultInfoTimeoutMS)
	viper.SetDefault(PredictTimeoutKey, DefaultPredictTimeoutMS)

	conf := &ClientConfig{
		BaseURL:          strings.TrimRight(viper.GetString(APIURLKey), "/"),
		ProbeTimeoutMS:   viper.GetInt(ProbeTimeoutKey),
		InfoTimeoutMS:    viper.GetInt(InfoTimeoutKey),
		PredictTimeoutMS: viper.GetInt(PredictTimeoutKey),
	}
	if err := conf.validate(); err != nil {
		return conf, err
	}
	return conf, nil
}
