package blockiir

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/cwbudde/algo-blockiir/internal/transition"
)

// causalLine filters x in place with carry c = [y[-1], y[-2]] and returns
// the tail [y[n-1], y[n-2]].
func causalLine[T hwy.Floats](x []T, b0, a1, a2 T, c transition.Vec2[T]) transition.Vec2[T] {
	p1, p2 := c[0], c[1]
	for j, v := range x {
		y := b0*v + a1*p1 + a2*p2
		x[j] = y
		p2, p1 = p1, y
	}

	return transition.Vec2[T]{p1, p2}
}

// anticausalLine filters x in place from the end with carry
// d = [z[n], z[n+1]] and returns the head [z[0], z[1]].
func anticausalLine[T hwy.Floats](x []T, b0, a1, a2 T, d transition.Vec2[T]) transition.Vec2[T] {
	n1, n2 := d[0], d[1]
	for j := len(x) - 1; j >= 0; j-- {
		z := b0*x[j] + a1*n1 + a2*n2
		x[j] = z
		n2, n1 = n1, z
	}

	return transition.Vec2[T]{n1, n2}
}

// causalColumns runs the causal recurrence down every column of the h x w
// row-major block blk. c1 and c2 hold y[-1] and y[-2] per column. The
// returned slices hold y[h-1] and y[h-2]; they alias blk or the carries.
func causalColumns[T hwy.Floats](blk []T, w, h int, b0, a1, a2 T, c1, c2 []T) (last1, last2 []T) {
	p1, p2 := c1[:w], c2[:w]
	for i := range h {
		row := blk[i*w : (i+1)*w]
		vec.BaseScale(b0, row)
		vec.BaseMulConstAddTo(row, a1, p1)
		if a2 != 0 {
			vec.BaseMulConstAddTo(row, a2, p2)
		}
		p2, p1 = p1, row
	}

	return p1, p2
}

// anticausalColumns runs the anticausal recurrence up every column of blk.
// d1 and d2 hold z[h] and z[h+1] per column. The returned slices hold z[0]
// and z[1].
func anticausalColumns[T hwy.Floats](blk []T, w, h int, b0, a1, a2 T, d1, d2 []T) (head0, head1 []T) {
	n1, n2 := d1[:w], d2[:w]
	for i := h - 1; i >= 0; i-- {
		row := blk[i*w : (i+1)*w]
		vec.BaseScale(b0, row)
		vec.BaseMulConstAddTo(row, a1, n1)
		if a2 != 0 {
			vec.BaseMulConstAddTo(row, a2, n2)
		}
		n2, n1 = n1, row
	}

	return n1, n2
}
