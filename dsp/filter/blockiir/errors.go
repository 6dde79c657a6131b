package blockiir

import (
	"errors"

	"github.com/cwbudde/algo-blockiir/internal/transition"
)

var (
	// ErrInvalidDimensions is returned for grids that are empty or not
	// fully backed by their data slice.
	ErrInvalidDimensions = errors.New("blockiir: invalid grid dimensions")

	// ErrInvalidBlockSize is returned for block sizes below one.
	ErrInvalidBlockSize = errors.New("blockiir: block size must be > 0")

	// ErrInvalidOrder is returned for filter orders other than 1 and 2, and
	// for first order coefficients with a non-zero A2.
	ErrInvalidOrder = errors.New("blockiir: filter order must be 1 or 2")

	// ErrInvalidCoefficients is returned for NaN or infinite coefficients.
	ErrInvalidCoefficients = errors.New("blockiir: coefficients must be finite")

	// ErrRepeatedRoots is returned for second order filters whose feedback
	// polynomial has a double root.
	ErrRepeatedRoots = transition.ErrRepeatedRoots

	// ErrAllocation is returned when the boundary storage for a grid cannot
	// be sized.
	ErrAllocation = errors.New("blockiir: boundary storage too large")
)
