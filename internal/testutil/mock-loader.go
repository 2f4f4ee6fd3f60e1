package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mpg-forecast/internal/core/domain"
)

// MockArtifactLoader is a mock of ArtifactLoader.
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// LinearArtifact returns a linear model over the six vehicle columns.
func LinearArtifact() *domain.Artifact {
	return &domain.Artifact{
		FormatVersion: domain.CurrentFormatVersion,
		Framework:     "sklearn",
		Estimator:     domain.EstimatorLinearRegression,
		Target:        "mpg",
		FeatureNames: []string{
			domain.FeatureCylinders,
			domain.FeatureHorsepower,
			domain.FeatureWeight,
			domain.FeatureCarAge,
			domain.FeatureOriginJapan,
			domain.FeatureOriginUSA,
		},
		Linear: &domain.LinearParams{
			Coefficients: []float64{-0.3, -0.02, -0.0055, -0.75, 1.2, -1.0},
			Intercept:    55,
		},
		Source: "reports/forecastingModel.json",
	}
}
