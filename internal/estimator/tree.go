package estimator

import (
	"fmt"

	"mpg-forecast/internal/core/domain"
)

// leaf marks a node with no children in the flat sklearn layout.
const leaf = -1

// Tree is a fitted regression tree stored as parallel node arrays.
type Tree struct {
	left      []int
	right     []int
	feature   []int
	threshold []float64
	value     []float64
	width     int
}

// NewTree validates the node arrays; Predict relies on every walk from the root
// reaching a leaf within bounds.
func NewTree(p domain.TreeParams, numFeatures int) (*Tree, error) {
	n := len(p.Value)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty tree", domain.ErrMalformedArtifact)
	}
	if len(p.ChildrenLeft) != n || len(p.ChildrenRight) != n || len(p.Feature) != n || len(p.Threshold) != n {
		return nil, fmt.Errorf("%w: node arrays differ in length", domain.ErrMalformedArtifact)
	}

	for i := 0; i < n; i++ {
		l, r := p.ChildrenLeft[i], p.ChildrenRight[i]
		if (l == leaf) != (r == leaf) {
			return nil, fmt.Errorf("%w: node %d has a single child", domain.ErrMalformedArtifact, i)
		}
		if l == leaf {
			continue
		}
		// Children always come after their parent, which also rules out cycles.
		if l <= i || l >= n || r <= i || r >= n {
			return nil, fmt.Errorf("%w: node %d has out of range children", domain.ErrMalformedArtifact, i)
		}
		if f := p.Feature[i]; f < 0 || f >= numFeatures {
			return nil, fmt.Errorf("%w: node %d splits on feature %d of %d", domain.ErrMalformedArtifact, i, f, numFeatures)
		}
	}

	return &Tree{
		left:      append([]int(nil), p.ChildrenLeft...),
		right:     append([]int(nil), p.ChildrenRight...),
		feature:   append([]int(nil), p.Feature...),
		threshold: append([]float64(nil), p.Threshold...),
		value:     append([]float64(nil), p.Value...),
		width:     numFeatures,
	}, nil
}

func (t *Tree) NumFeatures() int { return t.width }

func (t *Tree) Predict(x []float64) (float64, error) {
	if err := checkWidth(x, t.width); err != nil {
		return 0, err
	}
	return t.eval(x), nil
}

func (t *Tree) eval(x []float64) float64 {
	node := 0
	for t.left[node] != leaf {
		if x[t.feature[node]] <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.value[node]
}
