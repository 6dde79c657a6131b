package blockiir

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/cwbudde/algo-blockiir/dsp/buffer"
	"github.com/cwbudde/algo-blockiir/internal/transition"
)

// Filter applies one recursive filter configuration to grids of element
// type T. Apply and ApplyAll are safe for concurrent use; every Apply call
// gets its own boundary storage. Close must not overlap an Apply.
type Filter[T hwy.Floats] struct {
	coeffs     Coefficients
	cfg        config
	b0, a1, a2 T

	pool     *workerpool.Pool
	ownsPool bool

	mu    sync.Mutex
	lines map[int]*lineConstants[T]

	scratch *buffer.Pool[T]
	bounds  *buffer.Pool[transition.Vec2[T]]
}

// New validates c, applies opts and derives the constants for full blocks.
// Invalid configurations are reported here, before any grid is touched.
func New[T hwy.Floats](c Coefficients, opts ...Option) (*Filter[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter[T]{
		coeffs:  c,
		cfg:     cfg,
		b0:      T(c.B0),
		a1:      T(c.A1),
		a2:      T(c.A2),
		lines:   make(map[int]*lineConstants[T]),
		scratch: buffer.NewPool[T](),
		bounds:  buffer.NewPool[transition.Vec2[T]](),
	}

	if _, err := f.line(cfg.blockSize); err != nil {
		return nil, fmt.Errorf("blockiir: deriving block constants: %w", err)
	}

	if cfg.pool != nil {
		f.pool = cfg.pool
	} else {
		f.pool = workerpool.New(cfg.workers)
		f.ownsPool = true
	}

	return f, nil
}

// Coefficients returns the filter coefficients.
func (f *Filter[T]) Coefficients() Coefficients { return f.coeffs }

// BlockSize returns the block edge length.
func (f *Filter[T]) BlockSize() int { return f.cfg.blockSize }

// Direction returns the configured direction.
func (f *Filter[T]) Direction() Direction { return f.cfg.direction }

// AxisOrder returns the configured axis order.
func (f *Filter[T]) AxisOrder() AxisOrder { return f.cfg.axisOrder }

// Close stops the filter's own worker pool. A pool passed with [WithPool]
// is left running. Apply keeps working after Close, sequentially, but Close
// must not be called while an Apply or ApplyAll is in flight.
func (f *Filter[T]) Close() {
	if f.ownsPool {
		f.pool.Close()
	}
}

// line returns the cached constants for lines of length n.
func (f *Filter[T]) line(n int) (*lineConstants[T], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if lc, ok := f.lines[n]; ok {
		return lc, nil
	}

	lc, err := newLineConstants[T](f.coeffs, f.cfg.direction, n)
	if err != nil {
		return nil, err
	}

	f.lines[n] = lc

	return lc, nil
}

// Apply filters g in place.
//
// The passes run in order with a barrier between each: local, axis scan,
// transpose scan, finalization. The grid is written only by the last pass.
func (f *Filter[T]) Apply(g *buffer.Grid[T]) error {
	r, err := f.prepare(g)
	if err != nil {
		return err
	}
	defer r.release()

	f.pool.ParallelForAtomic(r.tiles.blocks(), r.local)
	f.pool.ParallelForAtomic(r.tiles.m, r.scanRows)
	f.pool.ParallelForAtomic(r.tiles.n, r.scanColumns)
	f.pool.ParallelForAtomic(r.tiles.blocks(), r.finalize)

	return nil
}

// check runs the grid and tiling checks of prepare without deriving
// constants or holding boundary storage.
func (f *Filter[T]) check(g *buffer.Grid[T]) error {
	if err := validateGrid(g); err != nil {
		return err
	}

	img := newView(g, f.cfg.axisOrder)
	_, err := newTiling(img.rows, img.cols, f.cfg.blockSize)

	return err
}

func validateGrid[T hwy.Floats](g *buffer.Grid[T]) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}

	return nil
}

// run holds the per-call state of one Apply.
type run[T hwy.Floats] struct {
	f     *Filter[T]
	img   view[T]
	tiles tiling

	causal bool
	anti   bool

	// across[n] serves lines along view rows of block column n; down[m]
	// serves lines along view columns of block row m.
	across []*lineConstants[T]
	down   []*lineConstants[T]

	// y and z are the row causal tails and anticausal heads, u and v the
	// column ones, each indexed by tiling.slot.
	y, z, u, v []transition.Vec2[T]

	held []*buffer.Buffer[transition.Vec2[T]]
}

func (f *Filter[T]) prepare(g *buffer.Grid[T]) (*run[T], error) {
	if err := validateGrid(g); err != nil {
		return nil, err
	}

	img := newView(g, f.cfg.axisOrder)

	tiles, err := newTiling(img.rows, img.cols, f.cfg.blockSize)
	if err != nil {
		return nil, err
	}

	r := &run[T]{
		f:      f,
		img:    img,
		tiles:  tiles,
		causal: f.cfg.direction.causal(),
		anti:   f.cfg.direction.anticausal(),
		across: make([]*lineConstants[T], tiles.n),
		down:   make([]*lineConstants[T], tiles.m),
	}

	for n := range tiles.n {
		if r.across[n], err = f.line(tiles.blockCols(n)); err != nil {
			return nil, err
		}
	}
	for m := range tiles.m {
		if r.down[m], err = f.line(tiles.blockRows(m)); err != nil {
			return nil, err
		}
	}

	size := tiles.boundaryLen()
	if r.causal {
		r.y = r.hold(size)
		r.u = r.hold(size)
	}
	if r.anti {
		r.z = r.hold(size)
		r.v = r.hold(size)
	}

	return r, nil
}

func (r *run[T]) hold(n int) []transition.Vec2[T] {
	b := r.f.bounds.Get(n)
	r.held = append(r.held, b)

	return b.Data()
}

func (r *run[T]) release() {
	for _, b := range r.held {
		r.f.bounds.Put(b)
	}
	r.held = nil
}

// blockScratch returns a zeroed buffer holding an h x w block followed by
// four carry rows of width w.
func (r *run[T]) blockScratch(h, w int) (*buffer.Buffer[T], []T, [4][]T) {
	s := r.f.scratch.Get(h*w + 4*w)
	data := s.Data()

	var carries [4][]T
	for k := range carries {
		off := h*w + k*w
		carries[k] = data[off : off+w]
	}

	return s, data[:h*w], carries
}
