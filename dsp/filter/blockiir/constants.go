package blockiir

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blockiir/internal/transition"
)

// lineConstants holds everything the scans need to know about a line of
// length n. Index k of g and q selects the carry component; index s of
// tailW and headW selects the state component.
type lineConstants[T hwy.Floats] struct {
	n int

	fwd    transition.Mat2[T] // causal carry -> causal tail
	rev    transition.Mat2[T] // anticausal carry -> anticausal head
	fwdRev transition.Mat2[T] // causal carry -> anticausal head

	// g[k][j] is the filtered output at j for a unit causal carry e_k and
	// zero input. q[k][j] is the same for a unit anticausal carry.
	g, q [2][]T

	// tailW[s][i] and headW[s][i] weigh input i into component s of the
	// zero-carry causal tail and anticausal head.
	tailW, headW [2][]T
}

func newLineConstants[T hwy.Floats](c Coefficients, dir Direction, n int) (*lineConstants[T], error) {
	fwd, err := transition.Forward(n, c.A1, c.A2)
	if err != nil {
		return nil, err
	}

	rev, err := transition.Reverse(n, c.A1, c.A2)
	if err != nil {
		return nil, err
	}

	fwdRev, err := transition.ForwardReverse(n, c.B0, c.A1, c.A2)
	if err != nil {
		return nil, err
	}

	var g, q, tailW, headW [2][]float64
	for k := range 2 {
		g[k] = make([]float64, n)
		q[k] = make([]float64, n)
		tailW[k] = make([]float64, n)
		headW[k] = make([]float64, n)
	}

	causal, anti := dir.causal(), dir.anticausal()

	if causal {
		if c.Order == 1 {
			prod, decay := transition.Decay(c.A1, n)
			copy(g[0], prod)
			vecmath.ScaleBlock(tailW[0], decay, c.B0)
		} else {
			causalLine(g[0], c.B0, c.A1, c.A2, transition.Vec2[float64]{1, 0})
			causalLine(g[1], c.B0, c.A1, c.A2, transition.Vec2[float64]{0, 1})

			h := make([]float64, n)
			h[0] = 1
			causalLine(h, 1, c.A1, c.A2, transition.Vec2[float64]{})
			for i := range n {
				tailW[0][i] = c.B0 * h[n-1-i]
			}
		}

		copy(tailW[1], tailW[0][1:])
	}

	if anti {
		for k := range 2 {
			if causal {
				anticausalLine(g[k], c.B0, c.A1, c.A2, transition.Vec2[float64]{})
			}

			var d transition.Vec2[float64]
			d[k] = 1
			anticausalLine(q[k], c.B0, c.A1, c.A2, d)
		}

		impulse := make([]float64, n)
		for i := range n {
			clear(impulse)
			impulse[i] = 1
			if causal {
				causalLine(impulse, c.B0, c.A1, c.A2, transition.Vec2[float64]{})
			}

			head := anticausalLine(impulse, c.B0, c.A1, c.A2, transition.Vec2[float64]{})
			headW[0][i] = head[0]
			headW[1][i] = head[1]
		}
	}

	lc := &lineConstants[T]{
		n:      n,
		fwd:    transition.Convert[T](fwd),
		rev:    transition.Convert[T](rev),
		fwdRev: transition.Convert[T](fwdRev),
	}
	for k := range 2 {
		lc.g[k] = narrow[T](g[k])
		lc.q[k] = narrow[T](q[k])
		lc.tailW[k] = narrow[T](tailW[k])
		lc.headW[k] = narrow[T](headW[k])
	}

	return lc, nil
}

func narrow[T hwy.Floats](src []float64) []T {
	dst := make([]T, len(src))
	for i, v := range src {
		dst[i] = T(v)
	}

	return dst
}
