package model

import (
	"fmt"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
)

// State is the process-wide model state. It is built once at startup and never mutated,
// so it can be shared by every request goroutine without locking.
type State struct {
	featureOrder listing.FeatureOrder
	predictor    Predictor
}

// NewState loads the artifact at path and builds its predictor
func NewState(path string) (*State, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	predictor, err := NewPredictor(artifact)
	if err != nil {
		return nil, &apperrors.StartupError{Op: opLoadArtifact, Path: path, Cause: err}
	}
	return NewStateWithPredictor(artifact.FeatureOrder, predictor)
}

// NewStateWithPredictor pairs an already built predictor with its feature order
func NewStateWithPredictor(order listing.FeatureOrder, predictor Predictor) (*State, error) {
	if predictor == nil {
		return nil, &apperrors.StartupError{Op: "build model state", Cause: fmt.Errorf("predictor is nil")}
	}
	if err := order.Validate(); err != nil {
		return nil, &apperrors.StartupError{Op: "build model state", Cause: err}
	}
	return &State{
		featureOrder: order.Clone(),
		predictor:    predictor,
	}, nil
}

// FeatureOrder returns a copy of the loaded column order
func (s *State) FeatureOrder() listing.FeatureOrder {
	return s.featureOrder.Clone()
}

func (s *State) ModelType() string {
	return s.predictor.Type()
}

func (s *State) Predictor() Predictor {
	return s.predictor
}
