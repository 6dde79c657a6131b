package transition

// Decay returns the first order closed-form decay vectors for a block of
// length n and decay constant l = a1:
//
//	prod[j] = l^(j+1)      response at j to a unit causal carry
//	rev[i]  = l^(n-1-i)    weight of input i on the causal tail
//
// Both are built by repeated multiplication so that neighbouring entries
// stay consistent with the scalar recurrence.
func Decay(l float64, n int) (prod, rev []float64) {
	if n <= 0 {
		return nil, nil
	}

	prod = make([]float64, n)
	prod[0] = l
	for j := 1; j < n; j++ {
		prod[j] = prod[j-1] * l
	}

	rev = make([]float64, n)
	rev[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		rev[i] = rev[i+1] * l
	}

	return prod, rev
}
