package listing

import (
	apperrors "github.com/Meesho/BharatMLStack/price-predictor/internal/errors"
)

// Validate is the authoritative check of an inbound listing. Every field rule is evaluated
// and all violations are reported together; the cross-field rules run only once every field
// is in range, and they are reported together as well.
func Validate(f Fields) (PredictionRequest, error) {
	violations := fieldViolations(f)
	if len(violations) == 0 {
		violations = crossFieldViolations(f)
	}
	if len(violations) > 0 {
		return PredictionRequest{}, &apperrors.ValidationError{Violations: violations}
	}
	return PredictionRequest{fields: f}, nil
}

// Advise runs the same rule set for early feedback in a client. It is not authoritative:
// the service re-validates every request with Validate.
func Advise(f Fields) []string {
	issues := fieldViolations(f)
	for _, rule := range CrossFieldRules {
		if rule.Applies(f) && !rule.Holds(f) {
			issues = append(issues, rule.Message)
		}
	}
	return issues
}

func fieldViolations(f Fields) []string {
	var violations []string
	for _, b := range FieldRules {
		v, _ := f.Value(b.Field)
		if !b.Admits(v) {
			violations = append(violations, b.Message)
		}
	}
	return violations
}

func crossFieldViolations(f Fields) []string {
	var violations []string
	for _, rule := range CrossFieldRules {
		if !rule.Holds(f) {
			violations = append(violations, rule.Message)
		}
	}
	return violations
}
