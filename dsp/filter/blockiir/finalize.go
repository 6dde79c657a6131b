package blockiir

import "github.com/cwbudde/algo-blockiir/internal/transition"

// finalize reruns block idx from the grid seeded with its true boundary
// states and writes the result back.
func (r *run[T]) finalize(idx int) {
	t := r.tiles
	m, n := idx/t.n, idx%t.n
	h, w := t.blockRows(m), t.blockCols(n)

	s, blk, carries := r.blockScratch(h, w)
	defer r.f.scratch.Put(s)

	r.img.load(blk, m*t.ws, n*t.ws, h, w)

	f := r.f

	for i := range h {
		row := blk[i*w : (i+1)*w]
		if r.causal {
			var cin transition.Vec2[T]
			if n > 0 {
				cin = r.y[t.slot(m, n-1)+i]
			}
			causalLine(row, f.b0, f.a1, f.a2, cin)
		}
		if r.anti {
			var din transition.Vec2[T]
			if n < t.n-1 {
				din = r.z[t.slot(m, n+1)+i]
			}
			anticausalLine(row, f.b0, f.a1, f.a2, din)
		}
	}

	if r.causal {
		if m > 0 {
			up := t.slot(m-1, n)
			for j := range w {
				carries[0][j] = r.u[up+j][0]
				carries[1][j] = r.u[up+j][1]
			}
		}
		causalColumns(blk, w, h, f.b0, f.a1, f.a2, carries[0], carries[1])
	}
	if r.anti {
		if m < t.m-1 {
			down := t.slot(m+1, n)
			for j := range w {
				carries[2][j] = r.v[down+j][0]
				carries[3][j] = r.v[down+j][1]
			}
		}
		anticausalColumns(blk, w, h, f.b0, f.a1, f.a2, carries[2], carries[3])
	}

	r.img.store(blk, m*t.ws, n*t.ws, h, w)
}
