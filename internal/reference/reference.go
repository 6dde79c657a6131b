// Package reference is the straightforward sequential evaluation of the
// recursive 2D filters, used as the oracle for the block-parallel code.
// Everything runs in float64 on compact row-major data.
package reference

import "github.com/cwbudde/algo-vecmath"

// Section is one recursive section:
//
//	causal      y[j] = B0*x[j] + A1*y[j-1] + A2*y[j-2]
//	anticausal  z[j] = B0*y[j] + A1*z[j+1] + A2*z[j+2]
type Section struct {
	B0, A1, A2 float64
}

// Causal filters x in place from the start with zero initial state.
func (s Section) Causal(x []float64) {
	var p1, p2 float64
	for j, v := range x {
		y := s.B0*v + s.A1*p1 + s.A2*p2
		x[j] = y
		p2, p1 = p1, y
	}
}

// Anticausal filters x in place from the end with zero initial state.
func (s Section) Anticausal(x []float64) {
	var n1, n2 float64
	for j := len(x) - 1; j >= 0; j-- {
		z := s.B0*x[j] + s.A1*n1 + s.A2*n2
		x[j] = z
		n2, n1 = n1, z
	}
}

// Options selects the passes of Filter2D.
type Options struct {
	Causal       bool
	Anticausal   bool
	ColumnsFirst bool
}

func (s Section) line(x []float64, opt Options) {
	if opt.Causal {
		s.Causal(x)
	}
	if opt.Anticausal {
		s.Anticausal(x)
	}
}

// Filter2D filters the width x height grid data in place along both axes.
func Filter2D(data []float64, width, height int, s Section, opt Options) {
	if opt.ColumnsFirst {
		filterColumns(data, width, height, s, opt)
		filterRows(data, width, height, s, opt)
		return
	}
	filterRows(data, width, height, s, opt)
	filterColumns(data, width, height, s, opt)
}

func filterRows(data []float64, width, height int, s Section, opt Options) {
	for y := range height {
		s.line(data[y*width:(y+1)*width], opt)
	}
}

func filterColumns(data []float64, width, height int, s Section, opt Options) {
	col := make([]float64, height)
	for x := range width {
		for y := range height {
			col[y] = data[y*width+x]
		}
		s.line(col, opt)
		for y := range height {
			data[y*width+x] = col[y]
		}
	}
}

// SummedArea replaces data with its double prefix sum.
func SummedArea(data []float64, width, height int) {
	for y := range height {
		row := data[y*width : (y+1)*width]
		for x := 1; x < width; x++ {
			row[x] += row[x-1]
		}
		if y > 0 {
			vecmath.AddBlockInPlace(row, data[(y-1)*width:y*width])
		}
	}
}
