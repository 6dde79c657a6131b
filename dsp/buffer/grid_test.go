package buffer

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid[float32](3, 2)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	if g.Stride != 3 || len(g.Data) != 6 {
		t.Fatalf("stride=%d len=%d, want 3 and 6", g.Stride, len(g.Data))
	}
}

func TestNewGridRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		if _, err := NewGrid[float64](dims[0], dims[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidGrid", dims[0], dims[1], err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		g    *Grid[float64]
		ok   bool
	}{
		{name: "nil", g: nil},
		{name: "compact", g: &Grid[float64]{Data: make([]float64, 6), Width: 3, Height: 2, Stride: 3}, ok: true},
		{name: "strided", g: &Grid[float64]{Data: make([]float64, 8), Width: 3, Height: 2, Stride: 5}, ok: true},
		{name: "short data", g: &Grid[float64]{Data: make([]float64, 7), Width: 3, Height: 2, Stride: 5}},
		{name: "stride below width", g: &Grid[float64]{Data: make([]float64, 6), Width: 3, Height: 2, Stride: 2}},
		{name: "extent overflows", g: &Grid[float64]{Data: make([]float64, 4), Width: 1, Height: 1 << 62, Stride: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("Validate() error = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestAccessorsRespectStride(t *testing.T) {
	g := &Grid[float64]{Data: make([]float64, 10), Width: 3, Height: 2, Stride: 5}
	g.Set(2, 1, 7)

	if g.Data[7] != 7 {
		t.Fatalf("Data[7] = %v, want 7", g.Data[7])
	}
	if g.At(2, 1) != 7 {
		t.Fatalf("At(2, 1) = %v, want 7", g.At(2, 1))
	}
	if len(g.Row(1)) != 3 {
		t.Fatalf("len(Row(1)) = %d, want 3", len(g.Row(1)))
	}
}

func TestFillAndClone(t *testing.T) {
	g := &Grid[float32]{Data: make([]float32, 10), Width: 3, Height: 2, Stride: 5}
	g.Fill(2)

	if g.Data[3] != 0 || g.Data[4] != 0 {
		t.Fatal("Fill must not touch padding between rows")
	}

	c := g.Clone()
	if c.Stride != 3 || len(c.Data) != 6 {
		t.Fatalf("clone stride=%d len=%d, want 3 and 6", c.Stride, len(c.Data))
	}

	c.Set(0, 0, 9)
	if g.At(0, 0) != 2 {
		t.Fatal("Clone must not share memory with the source")
	}
}
