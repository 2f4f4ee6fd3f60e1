package ports

import (
	"context"

	"mpg-forecast/internal/core/domain"
)

// ArtifactLoader reads a serialized model artifact from storage.
type ArtifactLoader interface {
	Load(ctx context.Context, path string) (*domain.Artifact, error)
}
