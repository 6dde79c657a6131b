package transition

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrRepeatedRoots is returned when the characteristic polynomial
	// λ² - a1·λ - a2 has (numerically) equal roots. The eigendecomposition
	// is singular there and the case is not special-cased.
	ErrRepeatedRoots = errors.New("transition: repeated characteristic roots")

	// ErrInvalidLength is returned for block lengths below one.
	ErrInvalidLength = errors.New("transition: block length must be > 0")
)

// repeatedRootTol bounds |a1² + 4a2| relative to max(a1², 4|a2|) below
// which the two roots are treated as equal.
const repeatedRootTol = 1e-9

// Roots returns the two roots of λ² - a1·λ - a2 = 0 (the eigenvalues of the
// companion matrix). They are complex conjugates for oscillatory filters.
func Roots(a1, a2 float64) (complex128, complex128) {
	delta := cmplx.Sqrt(complex(a1*a1+4*a2, 0))
	c := complex(a1, 0)
	return (c + delta) / 2, (c - delta) / 2
}

// Forward returns the matrix that advances a causal state across n samples
// of zero input: state(j+n) = Forward(n)·state(j).
//
// First order filters (a2 == 0) use the closed form [[L^n, 0], [L^(n-1), 0]]
// with L = a1. Second order filters diagonalise the companion matrix:
// T = S·diag(λ1^n, λ2^n)·S⁻¹ with S = [[λ1, λ2], [1, 1]].
func Forward(n int, a1, a2 float64) (Mat2[float64], error) {
	if n <= 0 {
		return Mat2[float64]{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if a2 == 0 {
		return firstOrderPower(n, a1), nil
	}

	return secondOrderPower(n, a1, a2)
}

func firstOrderPower(n int, l float64) Mat2[float64] {
	return Mat2[float64]{
		{math.Pow(l, float64(n)), 0},
		{math.Pow(l, float64(n-1)), 0},
	}
}

// repeatedRoots reports whether the discriminant a1² + 4a2 vanishes relative
// to the size of its terms.
func repeatedRoots(a1, a2 float64) bool {
	disc := a1*a1 + 4*a2
	scale := math.Max(a1*a1, 4*math.Abs(a2))

	return math.Abs(disc) <= repeatedRootTol*scale
}

func secondOrderPower(n int, a1, a2 float64) (Mat2[float64], error) {
	if repeatedRoots(a1, a2) {
		return Mat2[float64]{}, fmt.Errorf("%w: a1=%g a2=%g", ErrRepeatedRoots, a1, a2)
	}

	l1, l2 := Roots(a1, a2)
	det := l1 - l2

	s := Mat2[complex128]{
		{l1, l2},
		{1, 1},
	}
	inv := Mat2[complex128]{
		{1 / det, -l2 / det},
		{-1 / det, l1 / det},
	}

	p := complex(float64(n), 0)
	lb := Mat2[complex128]{
		{cmplx.Pow(l1, p), 0},
		{0, cmplx.Pow(l2, p)},
	}

	c := Mul(Mul(s, lb), inv)

	return Mat2[float64]{
		{real(c[0][0]), real(c[0][1])},
		{real(c[1][0]), real(c[1][1])},
	}, nil
}
