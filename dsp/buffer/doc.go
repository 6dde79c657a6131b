// Package buffer provides the 2D [Grid] that the block filters operate on,
// plus a reusable scratch [Buffer] and [Pool] for allocation-friendly
// repeated filtering.
//
// A Grid is a row-major view over a caller-owned slice. Filters mutate it in
// place. Buffers and pools exist so that scratch state (boundary vectors,
// per-block work areas) can be recycled across calls instead of reallocated.
package buffer
