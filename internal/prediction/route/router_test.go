package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/model"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/controller"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/httpframework"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLinearState(t *testing.T) *model.State {
	t.Helper()
	predictor, err := model.NewPredictor(&model.Artifact{
		ModelType:    model.LinearRegression,
		FeatureOrder: listing.DefaultFeatureOrder.Clone(),
		Coefficients: []float64{0.2, 0.5, 0.045, 1.5, 0.0085},
		Intercept:    -50,
	})
	require.NoError(t, err)
	state, err := model.NewStateWithPredictor(listing.DefaultFeatureOrder, predictor)
	require.NoError(t, err)
	return state
}

func newEngine(h handler.Handler, predictMiddlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.HTTPRecovery())
	Register(r, controller.NewPredictionController(h), predictMiddlewares...)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestBodyAndPathEntryPointsAgree(t *testing.T) {
	r := newEngine(handler.NewHandler(newLinearState(t)))
	tests := []struct {
		body  string
		query string
	}{
		{`{"bath":2,"balcony":1,"total_sqft_int":1000.0,"bhk":2,"price_per_sqft":6000.0}`, "/predict/2"},
		{`{"bath":3,"balcony":0,"total_sqft_int":1650.0,"bhk":3,"price_per_sqft":7250.0}`, "/predict/3?bath=3&balcony=0&total_sqft_int=1650&price_per_sqft=7250"},
		{`{"bath":1,"balcony":2,"total_sqft_int":600.0,"bhk":1,"price_per_sqft":4500.0}`, "/predict/1?bath=1&balcony=2&total_sqft_int=600&price_per_sqft=4500"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			byBody := do(r, http.MethodPost, "/predict", tt.body)
			byPath := do(r, http.MethodGet, tt.query, "")
			require.Equal(t, http.StatusOK, byBody.Code, byBody.Body.String())
			require.Equal(t, http.StatusOK, byPath.Code, byPath.Body.String())
			assert.JSONEq(t, byBody.Body.String(), byPath.Body.String())
		})
	}
}

func TestReferenceListing(t *testing.T) {
	r := newEngine(handler.NewHandler(newLinearState(t)))
	w := do(r, http.MethodPost, "/predict", `{"bath":2,"balcony":1,"total_sqft_int":1000.0,"bhk":2,"price_per_sqft":6000.0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp contracts.PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 49.9, resp.PredictedPriceLakhs)
	assert.Equal(t, []string{"bath", "balcony", "total_sqft_int", "bhk", "price_per_sqft"}, resp.FeatureOrder)
	assert.Equal(t, []float64{2, 1, 1000, 2, 6000}, resp.FeaturesUsed)
}

func TestTooManyBathsNeverReachesPredictor(t *testing.T) {
	predictor := &model.MockPredictor{}
	predictor.On("Type").Return(model.LinearRegression).Maybe()
	state, err := model.NewStateWithPredictor(listing.DefaultFeatureOrder, predictor)
	require.NoError(t, err)
	r := newEngine(handler.NewHandler(state))

	w := do(r, http.MethodPost, "/predict", `{"bath":5,"balcony":1,"total_sqft_int":1000.0,"bhk":2,"price_per_sqft":6000.0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp contracts.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"bath should typically be <= (bhk + 2)"}, resp.Errors)

	w = do(r, http.MethodGet, "/predict/0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	predictor.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestPredictorFailureIsBadRequest(t *testing.T) {
	predictor := &model.MockPredictor{}
	predictor.On("Type").Return(model.Ridge).Maybe()
	predictor.On("Predict", mock.Anything).Return(0.0, assert.AnError)
	state, err := model.NewStateWithPredictor(listing.DefaultFeatureOrder, predictor)
	require.NoError(t, err)
	r := newEngine(handler.NewHandler(state))

	w := do(r, http.MethodGet, "/predict/2", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Prediction failed: ")
}

func TestReadOnlyEndpoints(t *testing.T) {
	r := newEngine(handler.NewHandler(newLinearState(t)))

	w := do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Bangalore Price API is running","model_features":["bath","balcony","total_sqft_int","bhk","price_per_sqft"]}`, w.Body.String())

	w = do(r, http.MethodGet, "/model/info", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"feature_order":["bath","balcony","total_sqft_int","bhk","price_per_sqft"],"model_type":"LinearRegression"}`, w.Body.String())
}

func TestPredictMiddlewaresOnlyGuardPredict(t *testing.T) {
	reject := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTeapot)
	}
	r := newEngine(handler.NewHandler(newLinearState(t)), reject)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/model/info", "").Code)
	assert.Equal(t, http.StatusTeapot, do(r, http.MethodGet, "/predict/2", "").Code)
	assert.Equal(t, http.StatusTeapot, do(r, http.MethodPost, "/predict", `{}`).Code)
}

func TestInit(t *testing.T) {
	httpframework.ResetForTesting()
	defer httpframework.ResetForTesting()
	httpframework.Init()

	Init(handler.NewHandler(newLinearState(t)))
	w := do(httpframework.Instance(), http.MethodGet, "/predict/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
