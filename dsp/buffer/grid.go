package buffer

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// ErrInvalidGrid is returned when a grid's dimensions, stride or backing
// slice are inconsistent.
var ErrInvalidGrid = errors.New("buffer: invalid grid")

// Grid is a mutable row-major 2D array of scalars. Element (x, y) lives at
// Data[y*Stride+x]. Stride may exceed Width to describe a sub-rectangle of a
// larger image.
type Grid[T hwy.Floats] struct {
	Data   []T
	Width  int
	Height int
	Stride int
}

// NewGrid returns a zero-filled width x height grid with Stride == width.
func NewGrid[T hwy.Floats](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	return &Grid[T]{
		Data:   make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}, nil
}

// GridFromSlice wraps data as a width x height grid without copying.
func GridFromSlice[T hwy.Floats](data []T, width, height int) (*Grid[T], error) {
	g := &Grid[T]{Data: data, Width: width, Height: height, Stride: width}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate reports whether the grid describes a non-empty region fully
// backed by Data.
func (g *Grid[T]) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if g.Stride < g.Width {
		return fmt.Errorf("%w: stride %d < width %d", ErrInvalidGrid, g.Stride, g.Width)
	}
	if g.Height-1 > (math.MaxInt-g.Width)/g.Stride {
		return fmt.Errorf("%w: %d rows of stride %d overflow", ErrInvalidGrid, g.Height, g.Stride)
	}
	if need := (g.Height-1)*g.Stride + g.Width; len(g.Data) < need {
		return fmt.Errorf("%w: data length %d < %d", ErrInvalidGrid, len(g.Data), need)
	}
	return nil
}

// At returns the element at column x, row y.
func (g *Grid[T]) At(x, y int) T {
	return g.Data[y*g.Stride+x]
}

// Set stores v at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Data[y*g.Stride+x] = v
}

// Row returns row y as a slice of length Width aliasing Data.
func (g *Grid[T]) Row(y int) []T {
	off := y * g.Stride
	return g.Data[off : off+g.Width]
}

// Fill sets every element of the grid to v.
func (g *Grid[T]) Fill(v T) {
	for y := range g.Height {
		row := g.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clone returns a compact deep copy (Stride == Width).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		Data:   make([]T, g.Width*g.Height),
		Width:  g.Width,
		Height: g.Height,
		Stride: g.Width,
	}
	for y := range g.Height {
		copy(out.Row(y), g.Row(y))
	}
	return out
}
