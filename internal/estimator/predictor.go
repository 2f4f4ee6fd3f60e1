// Package estimator evaluates fitted regression models over a feature vector.
package estimator

import (
	"fmt"

	"mpg-forecast/internal/core/domain"
)

// Predictor produces an estimate from a feature vector ordered as the model was fit.
type Predictor interface {
	Predict(x []float64) (float64, error)
	NumFeatures() int
}

// FromArtifact builds the predictor for an artifact's estimator family.
func FromArtifact(a *domain.Artifact) (Predictor, error) {
	kind, err := domain.ParseEstimator(string(a.Estimator))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, a.Estimator)
	}
	n := len(a.FeatureNames)

	switch kind.Family() {
	case domain.FamilyLinear:
		if a.Linear == nil {
			return nil, fmt.Errorf("%w: %s requires a linear block", domain.ErrMalformedArtifact, kind)
		}
		return NewLinear(a.Linear.Coefficients, a.Linear.Intercept, n)
	case domain.FamilyAverage, domain.FamilyBoosted:
		if a.Ensemble == nil || len(a.Ensemble.Trees) == 0 {
			return nil, fmt.Errorf("%w: %s requires at least one tree", domain.ErrMalformedArtifact, kind)
		}
		trees := make([]*Tree, 0, len(a.Ensemble.Trees))
		for i, tp := range a.Ensemble.Trees {
			t, err := NewTree(tp, n)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			trees = append(trees, t)
		}
		if kind.Family() == domain.FamilyBoosted {
			if a.Ensemble.LearningRate == nil {
				return nil, fmt.Errorf("%w: %s requires learning_rate", domain.ErrMalformedArtifact, kind)
			}
			return NewBoosted(trees, a.Ensemble.Init, *a.Ensemble.LearningRate)
		}
		return NewAverage(trees)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEstimator, a.Estimator)
}

func checkWidth(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%w: got %d features, model expects %d", domain.ErrFeatureMismatch, len(x), want)
	}
	return nil
}
