package testutil

import "github.com/cwbudde/algo-blockiir/dsp/buffer"

func gridOf(data []float64, width, height, stride int) *buffer.Grid[float64] {
	return &buffer.Grid[float64]{Data: data, Width: width, Height: height, Stride: stride}
}
