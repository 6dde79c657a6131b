package blockiir

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-blockiir/dsp/buffer"
	"github.com/cwbudde/algo-blockiir/dsp/core"
)

// view presents a grid in filtering orientation: lines along view rows are
// filtered first. Element (r, c) lives at data[r*rowStride+c*colStride].
type view[T hwy.Floats] struct {
	data      []T
	rows      int
	cols      int
	rowStride int
	colStride int
}

func newView[T hwy.Floats](g *buffer.Grid[T], order AxisOrder) view[T] {
	if order == ColumnsFirst {
		return view[T]{data: g.Data, rows: g.Width, cols: g.Height, rowStride: 1, colStride: g.Stride}
	}

	return view[T]{data: g.Data, rows: g.Height, cols: g.Width, rowStride: g.Stride, colStride: 1}
}

// load copies the h x w region at (r0, c0) into dst with row stride w.
func (v view[T]) load(dst []T, r0, c0, h, w int) {
	for i := range h {
		off := (r0+i)*v.rowStride + c0*v.colStride
		row := dst[i*w : (i+1)*w]
		if v.colStride == 1 {
			copy(row, v.data[off:off+w])
			continue
		}
		for j := range row {
			row[j] = v.data[off+j*v.colStride]
		}
	}
}

// store is the inverse of load.
func (v view[T]) store(src []T, r0, c0, h, w int) {
	for i := range h {
		off := (r0+i)*v.rowStride + c0*v.colStride
		row := src[i*w : (i+1)*w]
		if v.colStride == 1 {
			copy(v.data[off:off+w], row)
			continue
		}
		for j, x := range row {
			v.data[off+j*v.colStride] = x
		}
	}
}

// tiling describes the block decomposition of a rows x cols view into
// m x n blocks of edge ws. Trailing blocks are truncated.
type tiling struct {
	ws   int
	rows int
	cols int
	m    int
	n    int

	// lines is the number of boundary slots reserved per block.
	lines int
}

func newTiling(rows, cols, ws int) (tiling, error) {
	t := tiling{
		ws:    ws,
		rows:  rows,
		cols:  cols,
		m:     core.CeilDiv(rows, ws),
		n:     core.CeilDiv(cols, ws),
		lines: max(min(ws, rows), min(ws, cols)),
	}

	if t.m > math.MaxInt/t.n || t.m*t.n > math.MaxInt/t.lines {
		return tiling{}, fmt.Errorf("%w: %dx%d blocks of %d lines", ErrAllocation, t.m, t.n, t.lines)
	}

	return t, nil
}

func (t tiling) blocks() int { return t.m * t.n }

func (t tiling) boundaryLen() int { return t.m * t.n * t.lines }

// blockRows returns the height of block row m.
func (t tiling) blockRows(m int) int { return min(t.ws, t.rows-m*t.ws) }

// blockCols returns the width of block column n.
func (t tiling) blockCols(n int) int { return min(t.ws, t.cols-n*t.ws) }

// slot returns the first boundary index of block (m, n). Line i of the
// block uses slot(m, n)+i.
func (t tiling) slot(m, n int) int { return (m*t.n + n) * t.lines }
