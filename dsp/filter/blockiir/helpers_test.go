package blockiir

import (
	"github.com/cwbudde/algo-blockiir/internal/reference"
	"github.com/cwbudde/algo-blockiir/internal/transition"
)

var coefficientCases = []struct {
	name string
	c    Coefficients
}{
	{name: "first order", c: FirstOrder(0.5, 0.5)},
	{name: "first order negative pole", c: FirstOrder(1, -0.8)},
	{name: "first order unit pole", c: FirstOrder(1, 1)},
	{name: "second order real roots", c: SecondOrder(0.3, 0.9, -0.2)},
	{name: "second order complex roots", c: SecondOrder(0.147, 1.41, -0.557)},
	{name: "second order oscillatory", c: SecondOrder(1, -0.3, -0.9)},
}

var directions = []Direction{Causal, Anticausal, Bidirectional}

var axisOrders = []AxisOrder{RowsFirst, ColumnsFirst}

// shapes mixes exact multiples, ragged edges, single lines and blocks
// larger than the grid.
var shapes = []struct {
	w, h, ws int
}{
	{w: 1, h: 1, ws: 4},
	{w: 7, h: 1, ws: 2},
	{w: 1, h: 9, ws: 4},
	{w: 5, h: 3, ws: 1},
	{w: 13, h: 11, ws: 3},
	{w: 32, h: 32, ws: 8},
	{w: 33, h: 31, ws: 8},
	{w: 70, h: 45, ws: 32},
	{w: 100, h: 37, ws: 16},
	{w: 20, h: 20, ws: 64},
}

func referenceOptions(dir Direction, order AxisOrder) reference.Options {
	return reference.Options{
		Causal:       dir.causal(),
		Anticausal:   dir.anticausal(),
		ColumnsFirst: order == ColumnsFirst,
	}
}

func referenceSection(c Coefficients) reference.Section {
	return reference.Section{B0: c.B0, A1: c.A1, A2: c.A2}
}

// component returns element k of every state.
func component(states []transition.Vec2[float64], k int) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = s[k]
	}
	return out
}
