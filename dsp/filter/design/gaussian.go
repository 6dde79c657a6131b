package design

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-blockiir/dsp/core"
	"github.com/cwbudde/algo-blockiir/dsp/filter/blockiir"
)

// MinSigma is the smallest supported Gaussian standard deviation.
const MinSigma = 0.5

// ErrInvalidSigma is returned for a sigma below MinSigma or not finite.
var ErrInvalidSigma = errors.New("design: invalid gaussian sigma")

// Base poles of the unit-scale approximations. The pole for a given sigma is
// base^(1/q(sigma)).
const (
	firstOrderBase  = 1.86543
	secondOrderBase = 1.56165 + 0.60571i
)

// scale maps sigma to the pole scaling exponent denominator.
func scale(sigma float64) float64 {
	return 0.00399341 + 0.4715161*sigma
}

// Gaussian returns recursive coefficients that, applied causally and then
// anticausally, approximate convolution with a Gaussian of standard
// deviation sigma. The DC gain of the two-pass filter is exactly one.
//
// order 1 uses a single real pole; order 2 a complex-conjugate pole pair,
// which follows the Gaussian shape much more closely.
func Gaussian(sigma float64, order int) (blockiir.Coefficients, error) {
	if !core.IsFinite(sigma) || sigma < MinSigma {
		return blockiir.Coefficients{}, fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}

	q := scale(sigma)

	switch order {
	case 1:
		a1 := 1 / math.Pow(firstOrderBase, 1/q)
		return blockiir.FirstOrder(1-a1, a1), nil
	case 2:
		d := cmplx.Rect(math.Pow(cmplx.Abs(secondOrderBase), 1/q), cmplx.Phase(secondOrderBase)/q)

		// Poles at 1/d and its conjugate.
		n2 := real(d)*real(d) + imag(d)*imag(d)
		a1 := 2 * real(d) / n2
		a2 := -1 / n2

		return blockiir.SecondOrder(1-a1-a2, a1, a2), nil
	default:
		return blockiir.Coefficients{}, fmt.Errorf("%w: got %d", blockiir.ErrInvalidOrder, order)
	}
}
