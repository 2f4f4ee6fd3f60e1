package estimator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"mpg-forecast/internal/core/domain"
)

// Ensemble combines tree outputs. Averaged ensembles (forests) return the mean; boosted
// ensembles return init + rate * sum.
type Ensemble struct {
	trees   []*Tree
	init    float64
	rate    float64
	boosted bool
}

func NewAverage(trees []*Tree) (*Ensemble, error) {
	if err := checkTrees(trees); err != nil {
		return nil, err
	}
	return &Ensemble{trees: trees}, nil
}

func NewBoosted(trees []*Tree, init, rate float64) (*Ensemble, error) {
	if err := checkTrees(trees); err != nil {
		return nil, err
	}
	return &Ensemble{trees: trees, init: init, rate: rate, boosted: true}, nil
}

func checkTrees(trees []*Tree) error {
	if len(trees) == 0 {
		return fmt.Errorf("%w: ensemble has no trees", domain.ErrMalformedArtifact)
	}
	for i, t := range trees {
		if t == nil {
			return fmt.Errorf("%w: tree %d is nil", domain.ErrMalformedArtifact, i)
		}
		if width := trees[0].NumFeatures(); t.NumFeatures() != width {
			return fmt.Errorf("%w: tree %d expects %d features, tree 0 expects %d",
				domain.ErrMalformedArtifact, i, t.NumFeatures(), width)
		}
	}
	return nil
}

func (e *Ensemble) NumFeatures() int { return e.trees[0].NumFeatures() }

func (e *Ensemble) Predict(x []float64) (float64, error) {
	if err := checkWidth(x, e.NumFeatures()); err != nil {
		return 0, err
	}
	out := make([]float64, len(e.trees))
	for i, t := range e.trees {
		out[i] = t.eval(x)
	}
	sum := floats.Sum(out)
	if e.boosted {
		return e.init + e.rate*sum, nil
	}
	return sum / float64(len(e.trees)), nil
}
