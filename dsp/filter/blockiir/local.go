package blockiir

import "github.com/cwbudde/algo-blockiir/internal/transition"

// local filters block idx with zero boundary state and records the states
// leaving it: row tails and heads into y and z, column tails and heads of
// the row-filtered block into u and v.
func (r *run[T]) local(idx int) {
	t := r.tiles
	m, n := idx/t.n, idx%t.n
	h, w := t.blockRows(m), t.blockCols(n)

	s, blk, carries := r.blockScratch(h, w)
	defer r.f.scratch.Put(s)

	r.img.load(blk, m*t.ws, n*t.ws, h, w)

	f := r.f
	base := t.slot(m, n)

	for i := range h {
		row := blk[i*w : (i+1)*w]
		if r.causal {
			r.y[base+i] = causalLine(row, f.b0, f.a1, f.a2, transition.Vec2[T]{})
		}
		if r.anti {
			r.z[base+i] = anticausalLine(row, f.b0, f.a1, f.a2, transition.Vec2[T]{})
		}
	}

	// carries are all zero here.
	if r.causal {
		t1, t2 := causalColumns(blk, w, h, f.b0, f.a1, f.a2, carries[0], carries[1])
		for j := range w {
			r.u[base+j] = transition.Vec2[T]{t1[j], t2[j]}
		}
	}
	if r.anti {
		h0, h1 := anticausalColumns(blk, w, h, f.b0, f.a1, f.a2, carries[2], carries[3])
		for j := range w {
			r.v[base+j] = transition.Vec2[T]{h0[j], h1[j]}
		}
	}
}
