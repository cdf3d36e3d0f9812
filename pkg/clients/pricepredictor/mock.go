package pricepredictor

import (
	"context"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Health(ctx context.Context) (*contracts.HealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.HealthResponse), args.Error(1)
}

func (m *MockClient) ModelInfo(ctx context.Context) (*contracts.ModelInfoResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.ModelInfoResponse), args.Error(1)
}

func (m *MockClient) PredictByBody(ctx context.Context, req contracts.PredictRequest) (*contracts.PredictResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.PredictResponse), args.Error(1)
}

func (m *MockClient) PredictByPath(ctx context.Context, bhk int, query contracts.PredictQuery) (*contracts.PredictResponse, error) {
	args := m.Called(ctx, bhk, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.PredictResponse), args.Error(1)
}
