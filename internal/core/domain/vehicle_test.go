package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExampleVehicle_Features(t *testing.T) {
	features := ExampleVehicle().Features()

	assert.Equal(t, map[string]float64{
		"cylinders":    4,
		"horsepower":   95,
		"weight":       2400,
		"car_age":      12,
		"origin_japan": 1,
		"origin_usa":   0,
	}, features)
}

func TestParseEstimator(t *testing.T) {
	tests := []struct {
		input    string
		expected EstimatorKind
		family   EstimatorFamily
	}{
		{input: "LinearRegression", expected: EstimatorLinearRegression, family: FamilyLinear},
		{input: " lasso ", expected: EstimatorLasso, family: FamilyLinear},
		{input: "ExtraTreesRegressor", expected: EstimatorExtraTrees, family: FamilyAverage},
		{input: "GRADIENTBOOSTINGREGRESSOR", expected: EstimatorGradientBoosting, family: FamilyBoosted},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseEstimator(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
			assert.Equal(t, tt.family, kind.Family())
		})
	}

	_, err := ParseEstimator("KNeighborsRegressor")
	assert.ErrorIs(t, err, ErrUnsupportedEstimator)
}

func TestValidateFramework(t *testing.T) {
	assert.NoError(t, ValidateFramework("sklearn"))
	assert.NoError(t, ValidateFramework("SKLearn"))
	assert.ErrorIs(t, ValidateFramework(""), ErrUnsupportedFramework)
	assert.ErrorIs(t, ValidateFramework("pytorch"), ErrUnsupportedFramework)
}
