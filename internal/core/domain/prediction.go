package domain

import "github.com/google/uuid"

type Prediction struct {
	RunID     uuid.UUID
	Value     float64
	Target    string
	Estimator EstimatorKind
	Source    string
}

// MPG is the predicted fuel economy in miles per gallon.
func (p *Prediction) MPG() float64 {
	return p.Value
}
