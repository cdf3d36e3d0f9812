package controller

import (
	"errors"
	"net/http"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/api"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/metric"
	"github.com/gin-gonic/gin"
)

const predictionFailedPrefix = "Prediction failed: "

type Controller interface {
	Health(ctx *gin.Context)
	ModelInfo(ctx *gin.Context)
	PredictByBody(ctx *gin.Context)
	PredictByPath(ctx *gin.Context)
}

type PredictionController struct {
	handler handler.Handler
}

func NewPredictionController(h handler.Handler) *PredictionController {
	return &PredictionController{handler: h}
}

func (c *PredictionController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.handler.Health())
}

func (c *PredictionController) ModelInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.handler.ModelInfo())
}

// PredictByBody serves POST /predict
func (c *PredictionController) PredictByBody(ctx *gin.Context) {
	var req contracts.PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(api.NewUnprocessableEntityError("Invalid request body: " + err.Error()))
		return
	}
	fields := listing.Fields{
		BHK:          *req.BHK,
		Bath:         *req.Bath,
		Balcony:      *req.Balcony,
		TotalSqft:    *req.TotalSqftInt,
		PricePerSqft: *req.PricePerSqft,
	}
	c.predict(ctx, fields, metric.TagValueEntryPointBody)
}

// PredictByPath serves GET /predict/:bhk. Query parameters left out take their defaults.
func (c *PredictionController) PredictByPath(ctx *gin.Context) {
	var path contracts.PredictPath
	if err := ctx.ShouldBindUri(&path); err != nil {
		_ = ctx.Error(api.NewUnprocessableEntityError("Invalid path parameter bhk: " + err.Error()))
		return
	}
	var query contracts.PredictQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		_ = ctx.Error(api.NewUnprocessableEntityError("Invalid query parameters: " + err.Error()))
		return
	}
	fields := listing.Fields{
		BHK:          path.BHK,
		Bath:         query.Bath,
		Balcony:      query.Balcony,
		TotalSqft:    query.TotalSqftInt,
		PricePerSqft: query.PricePerSqft,
	}
	c.predict(ctx, fields, metric.TagValueEntryPointQuery)
}

func (c *PredictionController) predict(ctx *gin.Context, fields listing.Fields, entryPoint string) {
	resp, err := c.handler.Predict(ctx.Request.Context(), fields, entryPoint)
	if err != nil {
		_ = ctx.Error(toAPIError(err))
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func toAPIError(err error) *api.Error {
	var (
		validationErr *apperrors.ValidationError
		unknownErr    *apperrors.UnknownFeatureError
		invocationErr *apperrors.PredictorInvocationError
	)
	switch {
	case errors.As(err, &validationErr):
		return api.NewUnprocessableEntityError(validationErr.Error(), validationErr.Violations...)
	case errors.As(err, &unknownErr), errors.As(err, &invocationErr):
		return api.NewBadRequestError(predictionFailedPrefix + err.Error())
	default:
		return api.NewInternalServerError(err.Error())
	}
}
