package blockiir

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-blockiir/internal/transition"
)

// affine is one scan step x -> m*x + r.
type affine[T hwy.Floats] struct {
	m transition.Mat2[T]
	r transition.Vec2[T]
}

func (a affine[T]) apply(x transition.Vec2[T]) transition.Vec2[T] {
	return transition.AddVec(transition.MulVec(a.m, x), a.r)
}

// scanRows turns the local row states of block row m into true ones:
// causal tails left to right, then anticausal heads right to left.
func (r *run[T]) scanRows(m int) {
	t := r.tiles
	h := t.blockRows(m)

	for i := range h {
		if r.causal {
			var carry transition.Vec2[T]
			for n := range t.n {
				k := t.slot(m, n) + i
				carry = affine[T]{m: r.across[n].fwd, r: r.y[k]}.apply(carry)
				r.y[k] = carry
			}
		}

		if r.anti {
			var next transition.Vec2[T]
			for n := t.n - 1; n >= 0; n-- {
				lc := r.across[n]
				k := t.slot(m, n) + i

				head := r.z[k]
				if r.causal && n > 0 {
					head = transition.AddVec(head, transition.MulVec(lc.fwdRev, r.y[t.slot(m, n-1)+i]))
				}

				next = affine[T]{m: lc.rev, r: head}.apply(next)
				r.z[k] = next
			}
		}
	}
}
