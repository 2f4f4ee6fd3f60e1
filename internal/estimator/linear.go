package estimator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"mpg-forecast/internal/core/domain"
)

// Linear is y = coef·x + intercept. Ridge, Lasso and ElasticNet fit the same form.
type Linear struct {
	coef      []float64
	intercept float64
}

func NewLinear(coef []float64, intercept float64, numFeatures int) (*Linear, error) {
	if len(coef) != numFeatures {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", domain.ErrMalformedArtifact, len(coef), numFeatures)
	}
	if numFeatures == 0 {
		return nil, fmt.Errorf("%w: no features", domain.ErrMalformedArtifact)
	}
	c := make([]float64, len(coef))
	copy(c, coef)
	return &Linear{coef: c, intercept: intercept}, nil
}

func (l *Linear) NumFeatures() int { return len(l.coef) }

func (l *Linear) Predict(x []float64) (float64, error) {
	if err := checkWidth(x, len(l.coef)); err != nil {
		return 0, err
	}
	return floats.Dot(l.coef, x) + l.intercept, nil
}
