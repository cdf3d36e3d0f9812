package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/model"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/tracing"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"

const healthMessage = "Bangalore Price API is running"

// Handler is the prediction service. Both HTTP entry points end up in Predict.
type Handler interface {
	Health() contracts.HealthResponse
	ModelInfo() contracts.ModelInfoResponse
	Predict(ctx context.Context, fields listing.Fields, entryPoint string) (*contracts.PredictResponse, error)
}

type PredictionHandler struct {
	state *model.State
}

func NewHandler(state *model.State) *PredictionHandler {
	return &PredictionHandler{state: state}
}

func (h *PredictionHandler) Health() contracts.HealthResponse {
	return contracts.HealthResponse{
		Status:        "ok",
		Message:       healthMessage,
		ModelFeatures: h.state.FeatureOrder(),
	}
}

func (h *PredictionHandler) ModelInfo() contracts.ModelInfoResponse {
	return contracts.ModelInfoResponse{
		FeatureOrder: h.state.FeatureOrder(),
		ModelType:    h.state.ModelType(),
	}
}

func (h *PredictionHandler) Predict(ctx context.Context, fields listing.Fields, entryPoint string) (*contracts.PredictResponse, error) {
	tags := metric.BuildTag(
		metric.NewTag(metric.TagEntryPoint, entryPoint),
		metric.NewTag(metric.TagModelType, h.state.ModelType()),
	)
	metric.Incr(metric.PredictionRequestCount, tags)

	req, err := listing.Validate(fields)
	if err != nil {
		metric.Incr(metric.PredictionRequest4xx, append(tags, metric.TagAsString(metric.TagFailureReason, "validation")))
		log.Debug().Err(err).Str("entry_point", entryPoint).Msg("rejected listing")
		return nil, err
	}

	order := h.state.FeatureOrder()
	vector, err := listing.Vectorize(req, order)
	if err != nil {
		metric.Incr(metric.PredictionFailureCount, append(tags, metric.TagAsString(metric.TagFailureReason, "vectorize")))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := tracing.GetTracer(tracerName).Start(ctx, "predictor.predict", trace.WithAttributes(
		attribute.String("model.type", h.state.ModelType()),
		attribute.String("entry_point", entryPoint),
		attribute.Float64Slice("features", vector),
	))
	defer span.End()

	startTime := time.Now()
	price, err := h.invoke(vector)
	metric.Timing(metric.PredictorLatency, time.Since(startTime), tags)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "predictor failed")
		metric.Incr(metric.PredictionFailureCount, append(tags, metric.TagAsString(metric.TagFailureReason, "predictor")))
		log.Error().Err(err).Msgf("predictor failed for vector %v", vector)
		return nil, err
	}

	price = roundLakhs(price)
	span.SetAttributes(attribute.Float64("predicted_price_lakhs", price))
	metric.Distribution(metric.PredictedPriceLakhs, price, tags)
	return &contracts.PredictResponse{
		PredictedPriceLakhs: price,
		FeatureOrder:        order,
		FeaturesUsed:        vector,
	}, nil
}

// invoke calls the predictor and turns a panic into a PredictorInvocationError
func (h *PredictionHandler) invoke(vector listing.FeatureVector) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &apperrors.PredictorInvocationError{Cause: fmt.Errorf("predictor panicked: %v", r)}
		}
	}()
	price, err = h.state.Predictor().Predict(vector)
	if err != nil {
		var invocationErr *apperrors.PredictorInvocationError
		if !errors.As(err, &invocationErr) {
			err = &apperrors.PredictorInvocationError{Cause: err}
		}
	}
	return price, err
}

// roundLakhs rounds to two decimals, half away from zero
func roundLakhs(v float64) float64 {
	return math.Round(v*100) / 100
}
