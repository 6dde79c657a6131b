package blockiir

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

const (
	defaultBlockSize        = 32
	defaultBatchConcurrency = 2
)

// Direction selects which recurrences are applied along each axis.
type Direction int

const (
	// Causal runs the forward recurrence only.
	Causal Direction = iota
	// Anticausal runs the backward recurrence only.
	Anticausal
	// Bidirectional runs the forward recurrence and then the backward
	// recurrence on its output.
	Bidirectional
)

func (d Direction) String() string {
	switch d {
	case Causal:
		return "causal"
	case Anticausal:
		return "anticausal"
	case Bidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

func (d Direction) causal() bool     { return d == Causal || d == Bidirectional }
func (d Direction) anticausal() bool { return d == Anticausal || d == Bidirectional }

// AxisOrder selects which axis is filtered first.
type AxisOrder int

const (
	// RowsFirst filters along every row, then along every column.
	RowsFirst AxisOrder = iota
	// ColumnsFirst filters along every column, then along every row.
	ColumnsFirst
)

func (o AxisOrder) String() string {
	switch o {
	case RowsFirst:
		return "rows_first"
	case ColumnsFirst:
		return "columns_first"
	default:
		return "unknown"
	}
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	blockSize        int
	direction        Direction
	axisOrder        AxisOrder
	workers          int
	pool             *workerpool.Pool
	batchConcurrency int
}

func defaultConfig() config {
	return config{
		blockSize:        defaultBlockSize,
		direction:        Causal,
		axisOrder:        RowsFirst,
		batchConcurrency: defaultBatchConcurrency,
	}
}

// WithBlockSize sets the block edge length. Must be > 0.
func WithBlockSize(ws int) Option {
	return func(cfg *config) error {
		if ws <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, ws)
		}

		cfg.blockSize = ws

		return nil
	}
}

// WithDirection selects causal, anticausal or bidirectional filtering.
func WithDirection(d Direction) Option {
	return func(cfg *config) error {
		if d < Causal || d > Bidirectional {
			return fmt.Errorf("blockiir: invalid direction: %d", d)
		}

		cfg.direction = d

		return nil
	}
}

// WithAxisOrder selects the axis filtered first.
func WithAxisOrder(o AxisOrder) Option {
	return func(cfg *config) error {
		if o != RowsFirst && o != ColumnsFirst {
			return fmt.Errorf("blockiir: invalid axis order: %d", o)
		}

		cfg.axisOrder = o

		return nil
	}
}

// WithWorkers sets the number of workers of the filter's own pool.
// Zero selects GOMAXPROCS. Ignored when [WithPool] is given.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("blockiir: worker count must be >= 0: %d", n)
		}

		cfg.workers = n

		return nil
	}
}

// WithPool runs the passes on a shared pool. The filter does not close it.
func WithPool(p *workerpool.Pool) Option {
	return func(cfg *config) error {
		if p == nil {
			return fmt.Errorf("blockiir: nil worker pool")
		}

		cfg.pool = p

		return nil
	}
}

// WithBatchConcurrency bounds how many grids [Filter.ApplyAll] filters at
// once. Must be > 0.
func WithBatchConcurrency(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("blockiir: batch concurrency must be > 0: %d", n)
		}

		cfg.batchConcurrency = n

		return nil
	}
}
