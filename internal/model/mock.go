package model

import (
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/stretchr/testify/mock"
)

type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(vector listing.FeatureVector) (float64, error) {
	args := m.Called(vector)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPredictor) Type() string {
	args := m.Called()
	return args.String(0)
}
