package artifactfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"mpg-forecast/internal/core/domain"
	"mpg-forecast/internal/core/ports/output"
)

type fileLoader struct{}

func NewFileLoader() ports.ArtifactLoader {
	return &fileLoader{}
}

func (l *fileLoader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	a, err := decode(path, raw)
	if err != nil {
		return nil, err
	}
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	a.Source = path

	log.WithFields(log.Fields{
		"path":      path,
		"bytes":     len(raw),
		"estimator": a.Estimator,
		"features":  len(a.FeatureNames),
	}).Debug("artifact loaded")

	return a, nil
}

func decode(path string, raw []byte) (*domain.Artifact, error) {
	var a domain.Artifact

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedArtifact, path, err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: trailing data after artifact", domain.ErrMalformedArtifact, path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedArtifact, path, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: more than one document", domain.ErrMalformedArtifact, path)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedArtifactType, ext)
	}

	return &a, nil
}

func validate(a *domain.Artifact) error {
	if a.FormatVersion != domain.CurrentFormatVersion {
		return fmt.Errorf("%w: %d", domain.ErrUnsupportedFormat, a.FormatVersion)
	}
	if err := domain.ValidateFramework(a.Framework); err != nil {
		return fmt.Errorf("%w: %q", err, a.Framework)
	}
	kind, err := domain.ParseEstimator(string(a.Estimator))
	if err != nil {
		return fmt.Errorf("%w: %q", err, a.Estimator)
	}
	a.Estimator = kind

	if len(a.FeatureNames) == 0 {
		return fmt.Errorf("%w: no feature names", domain.ErrMalformedArtifact)
	}
	seen := make(map[string]bool, len(a.FeatureNames))
	for _, name := range a.FeatureNames {
		if seen[name] {
			return fmt.Errorf("%w: duplicate feature %q", domain.ErrMalformedArtifact, name)
		}
		seen[name] = true
	}
	return nil
}
