// Package blockiir applies first and second order recursive filters and
// summed-area tables to 2D grids with a block-parallel evaluation.
//
// The grid is cut into square blocks. Every block is first filtered on its
// own with zero boundary state, recording the state that leaves it along
// each row and column. Two sequential scans, one along the block rows and
// one along the block columns, then turn those local states into the true
// boundary state of every block. A final per-block pass reruns the
// recurrences seeded with the corrected state and writes the result back.
// Only the last pass touches the grid, so a failed [Filter.Apply] leaves the
// input unchanged.
//
// Filters are described by [Coefficients]:
//
//	causal      y[j] = B0*x[j] + A1*y[j-1] + A2*y[j-2]
//	anticausal  z[j] = B0*y[j] + A1*z[j+1] + A2*z[j+2]
//
// with zero outside the grid. [Causal] runs the first recurrence,
// [Anticausal] the second on the raw input, and [Bidirectional] both.
// Rows are filtered before columns unless [ColumnsFirst] is selected.
//
// A summed-area table is the causal first order filter with B0 = A1 = 1;
// see [SummedAreaTable].
package blockiir
