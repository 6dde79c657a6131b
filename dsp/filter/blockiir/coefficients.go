package blockiir

import (
	"fmt"

	"github.com/cwbudde/algo-blockiir/dsp/core"
)

// Coefficients describes one recursive section. A2 must be zero for first
// order filters.
type Coefficients struct {
	Order  int
	B0     float64 // feedforward gain
	A1, A2 float64 // feedback, added (not subtracted) to the output
}

// FirstOrder returns the coefficients of y[j] = b0*x[j] + a1*y[j-1].
func FirstOrder(b0, a1 float64) Coefficients {
	return Coefficients{Order: 1, B0: b0, A1: a1}
}

// SecondOrder returns the coefficients of
// y[j] = b0*x[j] + a1*y[j-1] + a2*y[j-2].
func SecondOrder(b0, a1, a2 float64) Coefficients {
	return Coefficients{Order: 2, B0: b0, A1: a1, A2: a2}
}

// Validate reports whether c describes a supported filter. Repeated
// characteristic roots are only detected when the transition matrices are
// derived by [New].
func (c Coefficients) Validate() error {
	switch c.Order {
	case 1:
		if c.A2 != 0 {
			return fmt.Errorf("%w: first order with a2=%g", ErrInvalidOrder, c.A2)
		}
	case 2:
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, c.Order)
	}

	if !core.IsFinite(c.B0, c.A1, c.A2) {
		return fmt.Errorf("%w: b0=%g a1=%g a2=%g", ErrInvalidCoefficients, c.B0, c.A1, c.A2)
	}

	return nil
}
