package pricepredictor

import (
	"encoding/json"
	"fmt"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
)

// APIError is a non-2xx answer from the service. Body is kept verbatim.
type APIError struct {
	StatusCode int
	Body       string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, e.Body)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}
	var errResp contracts.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil {
		apiErr.Detail = errResp.Detail
	}
	return apiErr
}

// TransportError means the service could not be reached or did not answer in time
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("connection error calling %s: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
