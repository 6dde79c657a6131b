package testutil

import (
	"math/rand"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-blockiir/dsp/buffer"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Widen converts data to float64.
func Widen[T hwy.Floats](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Narrow converts data to T.
func Narrow[T hwy.Floats](data []float64) []T {
	out := make([]T, len(data))
	for i, v := range data {
		out[i] = T(v)
	}
	return out
}

// NoiseGrid returns a compact width x height grid of seeded noise in
// [-1, 1] together with the same values in float64.
func NoiseGrid[T hwy.Floats](seed int64, width, height int) (*buffer.Grid[T], []float64) {
	values := Widen(Narrow[T](DeterministicNoise(seed, 1, width*height)))
	return &buffer.Grid[T]{
		Data:   Narrow[T](values),
		Width:  width,
		Height: height,
		Stride: width,
	}, values
}

// Compact returns the grid's elements row by row in float64, dropping any
// stride padding.
func Compact[T hwy.Floats](g *buffer.Grid[T]) []float64 {
	out := make([]float64, 0, g.Width*g.Height)
	for y := range g.Height {
		out = append(out, Widen(g.Row(y))...)
	}
	return out
}
