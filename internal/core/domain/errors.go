package domain

import "errors"

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactNotFound        = errors.New("model artifact not found")
	ErrMalformedArtifact       = errors.New("malformed model artifact")
	ErrUnsupportedFormat       = errors.New("unsupported artifact format version")
	ErrUnsupportedFramework    = errors.New("unsupported model framework")
	ErrUnsupportedEstimator    = errors.New("unsupported estimator")
	ErrUnsupportedArtifactType = errors.New("unsupported artifact file type")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrFeatureMismatch = errors.New("feature names do not match those seen at fit time")
)
