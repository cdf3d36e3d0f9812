package handler

import (
	"sync"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/model"
)

var (
	predictionHandler Handler
	initOnce          sync.Once
)

// InitPredictionHandler builds the process-wide handler on first call
func InitPredictionHandler(state *model.State) Handler {
	initOnce.Do(func() {
		predictionHandler = NewHandler(state)
	})
	return predictionHandler
}
