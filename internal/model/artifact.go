package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const opLoadArtifact = "load model artifact"

// Artifact is the serialized regression model. Files may be written as JSON or YAML.
type Artifact struct {
	ModelType    string               `yaml:"model_type"`
	FeatureOrder listing.FeatureOrder `yaml:"feature_order"`
	Coefficients []float64            `yaml:"coefficients"`
	Intercept    float64              `yaml:"intercept"`
}

// LoadArtifact reads and checks the artifact at path. Every failure is a *StartupError.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, startupError(path, fmt.Errorf("model file not found, place the artifact at this path or set MODEL_ARTIFACT_PATH"))
		}
		return nil, startupError(path, err)
	}
	artifact, err := DecodeArtifact(bytes.NewReader(raw))
	if err != nil {
		return nil, startupError(path, err)
	}
	log.Info().Msgf("Loaded %s artifact from %s with feature order %v", artifact.ModelType, path, artifact.FeatureOrder)
	return artifact, nil
}

// DecodeArtifact decodes and checks an artifact
func DecodeArtifact(r io.Reader) (*Artifact, error) {
	var artifact Artifact
	if err := yaml.NewDecoder(r).Decode(&artifact); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("artifact is empty")
		}
		return nil, fmt.Errorf("malformed artifact: %w", err)
	}
	if len(artifact.FeatureOrder) == 0 {
		log.Warn().Msgf("Artifact declares no feature_order, falling back to %v", listing.DefaultFeatureOrder)
		artifact.FeatureOrder = listing.DefaultFeatureOrder.Clone()
	}
	if err := artifact.validate(); err != nil {
		return nil, err
	}
	return &artifact, nil
}

func (a *Artifact) validate() error {
	if a.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}
	if !isSupported(a.ModelType) {
		return fmt.Errorf("unsupported model_type %q", a.ModelType)
	}
	if err := a.FeatureOrder.Validate(); err != nil {
		return fmt.Errorf("invalid feature_order: %w", err)
	}
	if len(a.Coefficients) != len(a.FeatureOrder) {
		return fmt.Errorf("artifact has %d coefficients for %d features", len(a.Coefficients), len(a.FeatureOrder))
	}
	for i, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient for %s is not finite", a.FeatureOrder[i])
		}
	}
	if math.IsNaN(a.Intercept) || math.IsInf(a.Intercept, 0) {
		return fmt.Errorf("intercept is not finite")
	}
	return nil
}

func startupError(path string, cause error) error {
	return &apperrors.StartupError{Op: opLoadArtifact, Path: path, Cause: cause}
}
