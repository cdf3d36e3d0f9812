package route

import (
	"sync"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/controller"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/prediction/handler"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/httpframework"
	"github.com/gin-gonic/gin"
)

var initPredictionRouterOnce sync.Once

// Init registers the prediction routes on the shared engine
// Expects http framework to be initialized before calling this function
func Init(h handler.Handler, predictMiddlewares ...gin.HandlerFunc) {
	initPredictionRouterOnce.Do(func() {
		Register(httpframework.Instance(), controller.NewPredictionController(h), predictMiddlewares...)
	})
}

// Register mounts the service endpoints on r. predictMiddlewares run only in front of
// the two predict entry points.
func Register(r gin.IRouter, ctrl controller.Controller, predictMiddlewares ...gin.HandlerFunc) {
	r.GET("/", ctrl.Health)
	r.GET("/model/info", ctrl.ModelInfo)

	predict := r.Group("/predict", predictMiddlewares...)
	{
		predict.POST("", ctrl.PredictByBody)
		predict.GET("/:bhk", ctrl.PredictByPath)
	}
}
