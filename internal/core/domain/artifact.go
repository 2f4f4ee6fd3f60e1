package domain

import "strings"

// CurrentFormatVersion is the only artifact layout this build understands.
const CurrentFormatVersion = 1

type EstimatorKind string

const (
	EstimatorLinearRegression EstimatorKind = "LinearRegression"
	EstimatorRidge            EstimatorKind = "Ridge"
	EstimatorLasso            EstimatorKind = "Lasso"
	EstimatorElasticNet       EstimatorKind = "ElasticNet"
	EstimatorDecisionTree     EstimatorKind = "DecisionTreeRegressor"
	EstimatorRandomForest     EstimatorKind = "RandomForestRegressor"
	EstimatorExtraTrees       EstimatorKind = "ExtraTreesRegressor"
	EstimatorGradientBoosting EstimatorKind = "GradientBoostingRegressor"
)

// EstimatorFamily groups estimators that share a prediction routine.
type EstimatorFamily string

const (
	FamilyLinear  EstimatorFamily = "linear"
	FamilyAverage EstimatorFamily = "average"
	FamilyBoosted EstimatorFamily = "boosted"
)

// Exporters write estimator names in their own casing, so lookups go through lower case.
var supportedEstimators = map[string]EstimatorKind{
	"linearregression":          EstimatorLinearRegression,
	"ridge":                     EstimatorRidge,
	"lasso":                     EstimatorLasso,
	"elasticnet":                EstimatorElasticNet,
	"decisiontreeregressor":     EstimatorDecisionTree,
	"randomforestregressor":     EstimatorRandomForest,
	"extratreesregressor":       EstimatorExtraTrees,
	"gradientboostingregressor": EstimatorGradientBoosting,
}

var SupportedFrameworks = map[string]bool{
	"sklearn": true,
}

func ValidateFramework(framework string) error {
	if !SupportedFrameworks[strings.ToLower(framework)] {
		return ErrUnsupportedFramework
	}
	return nil
}

// ParseEstimator resolves an exported estimator name to its canonical kind.
func ParseEstimator(name string) (EstimatorKind, error) {
	kind, ok := supportedEstimators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", ErrUnsupportedEstimator
	}
	return kind, nil
}

func (k EstimatorKind) Family() EstimatorFamily {
	switch k {
	case EstimatorLinearRegression, EstimatorRidge, EstimatorLasso, EstimatorElasticNet:
		return FamilyLinear
	case EstimatorGradientBoosting:
		return FamilyBoosted
	default:
		return FamilyAverage
	}
}

// Artifact is a trained regression model as serialized on disk.
type Artifact struct {
	FormatVersion    int             `json:"format_version" yaml:"format_version"`
	Framework        string          `json:"framework" yaml:"framework"`
	FrameworkVersion string          `json:"framework_version" yaml:"framework_version"`
	Estimator        EstimatorKind   `json:"estimator" yaml:"estimator"`
	Target           string          `json:"target" yaml:"target"`
	FeatureNames     []string        `json:"feature_names" yaml:"feature_names"`
	Linear           *LinearParams   `json:"linear,omitempty" yaml:"linear,omitempty"`
	Ensemble         *EnsembleParams `json:"ensemble,omitempty" yaml:"ensemble,omitempty"`

	// Set by the loader, not part of the file.
	Source string `json:"-" yaml:"-"`
}

type LinearParams struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// EnsembleParams holds one or more trees. Init and LearningRate only apply to boosted
// ensembles, where LearningRate is required; 0 is a valid rate.
type EnsembleParams struct {
	Trees        []TreeParams `json:"trees" yaml:"trees"`
	Init         float64      `json:"init" yaml:"init"`
	LearningRate *float64     `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty"`
}

// TreeParams mirrors the flat node arrays of a fitted sklearn tree.
type TreeParams struct {
	ChildrenLeft  []int     `json:"children_left" yaml:"children_left"`
	ChildrenRight []int     `json:"children_right" yaml:"children_right"`
	Feature       []int     `json:"feature" yaml:"feature"`
	Threshold     []float64 `json:"threshold" yaml:"threshold"`
	Value         []float64 `json:"value" yaml:"value"`
}
