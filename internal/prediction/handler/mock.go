package handler

import (
	"context"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/stretchr/testify/mock"
)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Health() contracts.HealthResponse {
	args := m.Called()
	return args.Get(0).(contracts.HealthResponse)
}

func (m *MockHandler) ModelInfo() contracts.ModelInfoResponse {
	args := m.Called()
	return args.Get(0).(contracts.ModelInfoResponse)
}

func (m *MockHandler) Predict(ctx context.Context, fields listing.Fields, entryPoint string) (*contracts.PredictResponse, error) {
	args := m.Called(ctx, fields, entryPoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.PredictResponse), args.Error(1)
}
