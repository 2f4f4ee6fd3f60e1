package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mpg-forecast/internal/core/domain"
	"mpg-forecast/internal/core/ports/output"
	"mpg-forecast/internal/estimator"
)

type PredictionService struct {
	loader ports.ArtifactLoader
}

func NewPredictionService(loader ports.ArtifactLoader) *PredictionService {
	return &PredictionService{loader: loader}
}

// Predict loads the artifact at path and estimates fuel economy for one vehicle.
func (s *PredictionService) Predict(ctx context.Context, path string, vehicle domain.Vehicle) (*domain.Prediction, error) {
	runID := uuid.New()
	logger := log.WithFields(log.Fields{
		"run_id":   runID.String(),
		"artifact": path,
	})

	artifact, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load artifact: %w", err)
	}

	predictor, err := estimator.FromArtifact(artifact)
	if err != nil {
		return nil, fmt.Errorf("build predictor: %w", err)
	}

	x, err := AlignFeatures(artifact.FeatureNames, vehicle.Features())
	if err != nil {
		return nil, err
	}
	logger.WithField("features", x).Debug("feature vector aligned")

	value, err := predictor.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	logger.WithFields(log.Fields{
		"estimator": artifact.Estimator,
		"target":    artifact.Target,
	}).Info("prediction complete")

	return &domain.Prediction{
		RunID:     runID,
		Value:     value,
		Target:    artifact.Target,
		Estimator: artifact.Estimator,
		Source:    artifact.Source,
	}, nil
}

// AlignFeatures orders a named record into the column order the model was fit with.
// Columns are matched by name; a missing or unexpected column is an error rather than a
// zero fill or a silent drop.
func AlignFeatures(names []string, record map[string]float64) ([]float64, error) {
	x := make([]float64, len(names))
	expected := make(map[string]bool, len(names))
	var missing []string

	for i, name := range names {
		expected[name] = true
		v, ok := record[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		x[i] = v
	}

	var unseen []string
	for name := range record {
		if !expected[name] {
			unseen = append(unseen, name)
		}
	}

	if len(missing) == 0 && len(unseen) == 0 {
		return x, nil
	}

	sort.Strings(missing)
	sort.Strings(unseen)
	var parts []string
	if len(unseen) > 0 {
		parts = append(parts, "unseen at fit time: "+strings.Join(unseen, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrFeatureMismatch, strings.Join(parts, "; "))
}
