package model

import (
	"fmt"
	"math"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
)

// Predictor turns an ordered feature vector into a price in lakhs
type Predictor interface {
	Predict(vector listing.FeatureVector) (float64, error)
	Type() string
}

const (
	LinearRegression = "LinearRegression"
	Ridge            = "Ridge"
	Lasso            = "Lasso"
	ElasticNet       = "ElasticNet"
)

func isSupported(modelType string) bool {
	switch modelType {
	case LinearRegression, Ridge, Lasso, ElasticNet:
		return true
	default:
		return false
	}
}

// NewPredictor builds the predictor for the artifact's model type. Regularised linear
// models differ only in training, so they share one implementation at inference time.
func NewPredictor(artifact *Artifact) (Predictor, error) {
	switch artifact.ModelType {
	case LinearRegression, Ridge, Lasso, ElasticNet:
		return newLinearModel(artifact), nil
	default:
		return nil, fmt.Errorf("unsupported model_type %q", artifact.ModelType)
	}
}

type linearModel struct {
	modelType    string
	coefficients []float64
	intercept    float64
}

func newLinearModel(artifact *Artifact) *linearModel {
	return &linearModel{
		modelType:    artifact.ModelType,
		coefficients: append([]float64(nil), artifact.Coefficients...),
		intercept:    artifact.Intercept,
	}
}

func (m *linearModel) Type() string {
	return m.modelType
}

func (m *linearModel) Predict(vector listing.FeatureVector) (float64, error) {
	if len(vector) != len(m.coefficients) {
		return 0, &apperrors.PredictorInvocationError{
			Cause: fmt.Errorf("X has %d features, but %s is expecting %d features as input", len(vector), m.modelType, len(m.coefficients)),
		}
	}
	y := m.intercept
	for i, x := range vector {
		y += m.coefficients[i] * x
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, &apperrors.PredictorInvocationError{Cause: fmt.Errorf("%s produced a non-finite prediction", m.modelType)}
	}
	return y, nil
}
