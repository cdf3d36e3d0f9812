package pricepredictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/rs/zerolog/log"
)

const serviceName = "price-predictor"

// Client calls the price-predictor service. Every call is made once; failures are
// returned as *APIError or *TransportError and never retried.
type Client interface {
	Health(ctx context.Context) (*contracts.HealthResponse, error)
	ModelInfo(ctx context.Context) (*contracts.ModelInfoResponse, error)
	PredictByBody(ctx context.Context, req contracts.PredictRequest) (*contracts.PredictResponse, error)
	PredictByPath(ctx context.Context, bhk int, query contracts.PredictQuery) (*contracts.PredictResponse, error)
}

type ClientV1 struct {
	ClientConfigs *ClientConfig
	HTTPClient    *http.Client
}

func (c *ClientV1) Health(ctx context.Context) (*contracts.HealthResponse, error) {
	var resp contracts.HealthResponse
	if err := c.do(ctx, c.ClientConfigs.probeTimeout(), http.MethodGet, "/", "/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ClientV1) ModelInfo(ctx context.Context) (*contracts.ModelInfoResponse, error) {
	var resp contracts.ModelInfoResponse
	if err := c.do(ctx, c.ClientConfigs.infoTimeout(), http.MethodGet, "/model/info", "/model/info", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ClientV1) PredictByBody(ctx context.Context, req contracts.PredictRequest) (*contracts.PredictResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}
	var resp contracts.PredictResponse
	if err := c.do(ctx, c.ClientConfigs.predictTimeout(), http.MethodPost, "/predict", "/predict", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ClientV1) PredictByPath(ctx context.Context, bhk int, query contracts.PredictQuery) (*contracts.PredictResponse, error) {
	values := url.Values{}
	values.Set("bath", strconv.Itoa(query.Bath))
	values.Set("balcony", strconv.Itoa(query.Balcony))
	values.Set("total_sqft_int", strconv.FormatFloat(query.TotalSqftInt, 'f', -1, 64))
	values.Set("price_per_sqft", strconv.FormatFloat(query.PricePerSqft, 'f', -1, 64))
	path := "/predict/" + strconv.Itoa(bhk) + "?" + values.Encode()

	var resp contracts.PredictResponse
	if err := c.do(ctx, c.ClientConfigs.predictTimeout(), http.MethodGet, path, "/predict/:bhk", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one bounded call and decodes a 2xx body into out. route is the
// low-cardinality form of path used for metrics.
func (c *ClientV1) do(ctx context.Context, timeout time.Duration, method, path, route string, body []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := c.ClientConfigs.BaseURL + path
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.record(route, method, 0, startTime)
		log.Error().Err(err).Str("url", target).Msg("price-predictor call failed")
		return &TransportError{URL: target, Cause: err}
	}
	defer resp.Body.Close()
	c.record(route, method, resp.StatusCode, startTime)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: target, Cause: fmt.Errorf("failed to read response body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status_code", resp.StatusCode).Str("response_body", string(respBody)).Msgf("price-predictor %s %s rejected", method, route)
		return newAPIError(resp.StatusCode, respBody)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", target, err)
	}
	return nil
}

func (c *ClientV1) record(route, method string, statusCode int, startTime time.Time) {
	tags := metric.BuildExternalHTTPServiceTags(serviceName, route, method, statusCode)
	metric.Incr(metric.ExternalApiRequestCount, tags)
	metric.Timing(metric.ExternalApiRequestLatency, time.Since(startTime), tags)
}
