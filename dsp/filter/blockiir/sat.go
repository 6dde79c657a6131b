package blockiir

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-blockiir/dsp/buffer"
)

// SummedAreaTable replaces every element of g with the sum of all elements
// above and to the left of it, inclusive. opts may set the block size and
// workers; the direction is always causal.
func SummedAreaTable[T hwy.Floats](g *buffer.Grid[T], opts ...Option) error {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithDirection(Causal))

	return Apply(g, FirstOrder(1, 1), all...)
}

// Apply filters g in place with a throwaway [Filter].
func Apply[T hwy.Floats](g *buffer.Grid[T], c Coefficients, opts ...Option) error {
	f, err := New[T](c, opts...)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Apply(g)
}
