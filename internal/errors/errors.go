package errors

import (
	"fmt"
	"strings"
)

// ValidationError lists every rule an inbound listing violated
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "Invalid input: " + strings.Join(e.Violations, "; ")
}

// UnknownFeatureError is raised when the loaded feature order names a column
// the request does not carry
type UnknownFeatureError struct {
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("feature %q is not a known listing field", e.Feature)
}

// PredictorInvocationError wraps a failure of the model at call time
type PredictorInvocationError struct {
	Cause error
}

func (e *PredictorInvocationError) Error() string {
	return e.Cause.Error()
}

func (e *PredictorInvocationError) Unwrap() error {
	return e.Cause
}

// StartupError means the service cannot come up, e.g. the model artifact is missing
type StartupError struct {
	Op    string
	Path  string
	Cause error
}

func (e *StartupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *StartupError) Unwrap() error {
	return e.Cause
}
