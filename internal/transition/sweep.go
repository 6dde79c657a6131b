package transition

import "fmt"

// Reverse returns the matrix that carries an anticausal state across n
// samples of zero input: head = Reverse(n)·[z[n], z[n+1]] where
// head = [z[0], z[1]].
//
// It is evaluated by running the anticausal recurrence over a length n+2
// buffer whose last two slots hold the unit carry.
func Reverse(n int, a1, a2 float64) (Mat2[float64], error) {
	if n <= 0 {
		return Mat2[float64]{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	var t Mat2[float64]

	buf := make([]float64, n+2)
	for k := range 2 {
		clear(buf)
		buf[n+k] = 1

		for j := n - 1; j >= 0; j-- {
			buf[j] = a1*buf[j+1] + a2*buf[j+2]
		}

		t[0][k] = buf[0]
		t[1][k] = buf[1]
	}

	return t, nil
}

// ForwardReverse returns the matrix that maps a causal carry entering a
// length-n block to the anticausal head leaving it, when the block input is
// zero and the anticausal carry is zero. This is the coupling term between
// the forward and the backward pass of a forward-backward filter.
//
// The matrix is built without an eigendecomposition: a forward elimination
// sweep propagates the unit carry through the block and a backward
// substitution sweep applies the anticausal recurrence to the result.
func ForwardReverse(n int, b0, a1, a2 float64) (Mat2[float64], error) {
	if n <= 0 {
		return Mat2[float64]{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	var t Mat2[float64]

	// raw[0], raw[1] hold y[-2], y[-1]; raw[n+2], raw[n+3] hold z[n], z[n+1].
	raw := make([]float64, n+4)
	for k := range 2 {
		clear(raw)
		raw[1-k] = 1

		for j := 2; j < n+2; j++ {
			raw[j] = a1*raw[j-1] + a2*raw[j-2]
		}

		for j := n + 1; j >= 2; j-- {
			raw[j] = b0*raw[j] + a1*raw[j+1] + a2*raw[j+2]
		}

		t[0][k] = raw[2]
		t[1][k] = raw[3]
	}

	return t, nil
}
