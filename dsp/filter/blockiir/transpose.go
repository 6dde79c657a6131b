package blockiir

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-blockiir/internal/transition"
)

// scanColumns completes the column states of block column n. For every
// block it first folds the true row carries into the local column states,
// then scans causal tails downwards and anticausal heads upwards.
func (r *run[T]) scanColumns(n int) {
	t := r.tiles
	w := t.blockCols(n)

	for m := range t.m {
		base := t.slot(m, n)

		r.foldRowCarries(m, n)

		if r.causal && m > 0 {
			fwd := r.down[m].fwd
			up := t.slot(m-1, n)
			for j := range w {
				r.u[base+j] = affine[T]{m: fwd, r: r.u[base+j]}.apply(r.u[up+j])
			}
		}
	}

	if !r.anti {
		return
	}

	for m := t.m - 1; m >= 0; m-- {
		lc := r.down[m]
		base := t.slot(m, n)

		for j := range w {
			head := r.v[base+j]
			if r.causal && m > 0 {
				head = transition.AddVec(head, transition.MulVec(lc.fwdRev, r.u[t.slot(m-1, n)+j]))
			}

			var next transition.Vec2[T]
			if m < t.m-1 {
				next = r.v[t.slot(m+1, n)+j]
			}

			r.v[base+j] = affine[T]{m: lc.rev, r: head}.apply(next)
		}
	}
}

// foldRowCarries adds to the local column states of block (m, n) the part
// contributed by the true row carries entering the block from its left and
// right neighbours.
//
// The row output offset at column j is G_j·cin + Q_j·din per row, so the
// column state offset is (Σ_i W[i]·cin_i)·g_j + (Σ_i W[i]·din_i)·q_j with W
// the column input weights.
func (r *run[T]) foldRowCarries(m, n int) {
	t := r.tiles
	left := r.causal && n > 0
	right := r.anti && n < t.n-1
	if !left && !right {
		return
	}

	col := r.down[m]
	h, w := t.blockRows(m), t.blockCols(n)

	var ct, ch, dt, dh transition.Mat2[T]
	if left {
		prev := t.slot(m, n-1)
		for i := range h {
			addOuter(&ct, col.tailW, i, r.y[prev+i])
			addOuter(&ch, col.headW, i, r.y[prev+i])
		}
	}
	if right {
		next := t.slot(m, n+1)
		for i := range h {
			addOuter(&dt, col.tailW, i, r.z[next+i])
			addOuter(&dh, col.headW, i, r.z[next+i])
		}
	}

	row := r.across[n]
	base := t.slot(m, n)
	for j := range w {
		g := transition.Vec2[T]{row.g[0][j], row.g[1][j]}
		q := transition.Vec2[T]{row.q[0][j], row.q[1][j]}

		if r.causal {
			r.u[base+j] = transition.AddVec(r.u[base+j],
				transition.AddVec(transition.MulVec(ct, g), transition.MulVec(dt, q)))
		}
		if r.anti {
			r.v[base+j] = transition.AddVec(r.v[base+j],
				transition.AddVec(transition.MulVec(ch, g), transition.MulVec(dh, q)))
		}
	}
}

// addOuter accumulates weight[s][i]*carry[k] into acc[s][k].
func addOuter[T hwy.Floats](acc *transition.Mat2[T], weight [2][]T, i int, carry transition.Vec2[T]) {
	for s := range 2 {
		ws := weight[s][i]
		acc[s][0] += ws * carry[0]
		acc[s][1] += ws * carry[1]
	}
}
