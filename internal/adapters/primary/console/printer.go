package console

import (
	"fmt"
	"io"

	"mpg-forecast/internal/core/domain"
)

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintPrediction writes the estimate rounded to two decimals.
func (p *Printer) PrintPrediction(pred *domain.Prediction) error {
	if _, err := fmt.Fprintf(p.out, "Predicted MPG: %.2f\n", pred.MPG()); err != nil {
		return fmt.Errorf("write prediction: %w", err)
	}
	return nil
}
