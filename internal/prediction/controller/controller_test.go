package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(h handler.Handler) *gin.Engine {
	ctrl := NewPredictionController(h)
	r := gin.New()
	r.Use(middleware.HTTPRecovery())
	r.GET("/", ctrl.Health)
	r.GET("/model/info", ctrl.ModelInfo)
	r.POST("/predict", ctrl.PredictByBody)
	r.GET("/predict/:bhk", ctrl.PredictByPath)
	return r
}

func serve(r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) contracts.ErrorResponse {
	t.Helper()
	var resp contracts.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var okResponse = &contracts.PredictResponse{
	PredictedPriceLakhs: 49.9,
	FeatureOrder:        []string{"bath", "balcony", "total_sqft_int", "bhk", "price_per_sqft"},
	FeaturesUsed:        []float64{2, 1, 1000, 2, 6000},
}

func TestHealth(t *testing.T) {
	h := &handler.MockHandler{}
	h.On("Health").Return(contracts.HealthResponse{Status: "ok", Message: "running", ModelFeatures: []string{"bhk"}})

	w := serve(newTestRouter(h), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"running","model_features":["bhk"]}`, w.Body.String())
}

func TestModelInfo(t *testing.T) {
	h := &handler.MockHandler{}
	h.On("ModelInfo").Return(contracts.ModelInfoResponse{FeatureOrder: []string{"bhk"}, ModelType: "Ridge"})

	w := serve(newTestRouter(h), http.MethodGet, "/model/info", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"feature_order":["bhk"],"model_type":"Ridge"}`, w.Body.String())
}

func TestPredictByBody_MapsFields(t *testing.T) {
	h := &handler.MockHandler{}
	want := listing.Fields{BHK: 3, Bath: 2, Balcony: 0, TotalSqft: 1450.5, PricePerSqft: 7000}
	h.On("Predict", mock.Anything, want, metric.TagValueEntryPointBody).Return(okResponse, nil).Once()

	body := []byte(`{"bath":2,"balcony":0,"total_sqft_int":1450.5,"bhk":3,"price_per_sqft":7000}`)
	w := serve(newTestRouter(h), http.MethodPost, "/predict", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"predicted_price_lakhs":49.9,"feature_order":["bath","balcony","total_sqft_int","bhk","price_per_sqft"],"features_used":[2,1,1000,2,6000]}`, w.Body.String())
	h.AssertExpectations(t)
}

func TestPredictByBody_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{"bath":2,"balcony":1,"total_sqft_int":1000,"bhk":2}`},
		{"wrong type", `{"bath":"two","balcony":1,"total_sqft_int":1000,"bhk":2,"price_per_sqft":6000}`},
		{"fractional bhk", `{"bath":2,"balcony":1,"total_sqft_int":1000,"bhk":2.5,"price_per_sqft":6000}`},
		{"not json", `bhk=2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handler.MockHandler{}
			w := serve(newTestRouter(h), http.MethodPost, "/predict", []byte(tt.body))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, decodeError(t, w).Detail, "Invalid request body")
			h.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPredictByPath_Defaults(t *testing.T) {
	h := &handler.MockHandler{}
	h.On("Predict", mock.Anything, listing.DefaultFields(), metric.TagValueEntryPointQuery).Return(okResponse, nil).Once()

	w := serve(newTestRouter(h), http.MethodGet, "/predict/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	h.AssertExpectations(t)
}

func TestPredictByPath_QueryOverrides(t *testing.T) {
	h := &handler.MockHandler{}
	want := listing.Fields{BHK: 4, Bath: 3, Balcony: 0, TotalSqft: 2200, PricePerSqft: 9500.5}
	h.On("Predict", mock.Anything, want, metric.TagValueEntryPointQuery).Return(okResponse, nil).Once()

	w := serve(newTestRouter(h), http.MethodGet, "/predict/4?bath=3&balcony=0&total_sqft_int=2200&price_per_sqft=9500.5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	h.AssertExpectations(t)
}

func TestPredictByPath_Malformed(t *testing.T) {
	for _, target := range []string{"/predict/two", "/predict/2?bath=many", "/predict/2?total_sqft_int=big"} {
		t.Run(target, func(t *testing.T) {
			h := &handler.MockHandler{}
			w := serve(newTestRouter(h), http.MethodGet, target, nil)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			h.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPredict_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
		wantErrors []string
	}{
		{
			name:       "validation",
			err:        &apperrors.ValidationError{Violations: []string{"bhk must be between 1 and 12", "balcony must be between 0 and 6"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "Invalid input: bhk must be between 1 and 12; balcony must be between 0 and 6",
			wantErrors: []string{"bhk must be between 1 and 12", "balcony must be between 0 and 6"},
		},
		{
			name:       "predictor",
			err:        &apperrors.PredictorInvocationError{Cause: errors.New("X has 4 features")},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Prediction failed: X has 4 features",
		},
		{
			name:       "unknown feature",
			err:        fmt.Errorf("vectorize: %w", &apperrors.UnknownFeatureError{Feature: "location"}),
			wantStatus: http.StatusBadRequest,
			wantDetail: `Prediction failed: vectorize: feature "location" is not a known listing field`,
		},
		{
			name:       "unexpected",
			err:        errors.New("context canceled"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "context canceled",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handler.MockHandler{}
			h.On("Predict", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(newTestRouter(h), http.MethodGet, "/predict/2", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantDetail, resp.Detail)
			assert.Equal(t, tt.wantErrors, resp.Errors)
		})
	}
}
