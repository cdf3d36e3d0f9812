// Package contracts holds the JSON shapes exchanged between the price-predictor service
// and its clients.
package contracts

// PredictRequest is the structured body of POST /predict. Pointers distinguish a missing
// field from a legitimate zero such as balcony=0.
type PredictRequest struct {
	Bath         *int     `json:"bath" binding:"required"`
	Balcony      *int     `json:"balcony" binding:"required"`
	TotalSqftInt *float64 `json:"total_sqft_int" binding:"required"`
	BHK          *int     `json:"bhk" binding:"required"`
	PricePerSqft *float64 `json:"price_per_sqft" binding:"required"`
}

// PredictPath is the path part of GET /predict/:bhk
type PredictPath struct {
	BHK int `uri:"bhk"`
}

// PredictQuery is the query part of GET /predict/:bhk
type PredictQuery struct {
	Bath         int     `form:"bath,default=2"`
	Balcony      int     `form:"balcony,default=1"`
	TotalSqftInt float64 `form:"total_sqft_int,default=1000.0"`
	PricePerSqft float64 `form:"price_per_sqft,default=6000.0"`
}

type PredictResponse struct {
	PredictedPriceLakhs float64   `json:"predicted_price_lakhs"`
	FeatureOrder        []string  `json:"feature_order"`
	FeaturesUsed        []float64 `json:"features_used"`
}

type HealthResponse struct {
	Status        string   `json:"status"`
	Message       string   `json:"message"`
	ModelFeatures []string `json:"model_features"`
}

type ModelInfoResponse struct {
	FeatureOrder []string `json:"feature_order"`
	ModelType    string   `json:"model_type"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors,omitempty"`
}
