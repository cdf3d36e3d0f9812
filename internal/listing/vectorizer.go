package listing

import (
	"fmt"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
)

// FeatureOrder is the column order the model was trained on
type FeatureOrder []string

// FeatureVector holds one value per FeatureOrder column, in the same order
type FeatureVector []float64

// DefaultFeatureOrder is used when an artifact does not declare its own order
var DefaultFeatureOrder = FeatureOrder{FieldBath, FieldBalcony, FieldTotalSqft, FieldBHK, FieldPricePerSqft}

// Validate checks that the order is non-empty, has no repeated column and only names
// fields a listing carries.
func (o FeatureOrder) Validate() error {
	if len(o) == 0 {
		return fmt.Errorf("feature order is empty")
	}
	seen := make(map[string]struct{}, len(o))
	for _, name := range o {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("feature %q appears more than once", name)
		}
		seen[name] = struct{}{}
		if _, ok := (Fields{}).Value(name); !ok {
			return &apperrors.UnknownFeatureError{Feature: name}
		}
	}
	return nil
}

// Clone returns a copy that callers may keep or modify
func (o FeatureOrder) Clone() FeatureOrder {
	return append(FeatureOrder(nil), o...)
}

// Vectorize places every field of req at the position order gives it
func Vectorize(req PredictionRequest, order FeatureOrder) (FeatureVector, error) {
	vector := make(FeatureVector, len(order))
	for i, name := range order {
		v, ok := req.Value(name)
		if !ok {
			return nil, &apperrors.UnknownFeatureError{Feature: name}
		}
		vector[i] = v
	}
	return vector, nil
}
