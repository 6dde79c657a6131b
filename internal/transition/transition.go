// Package transition derives the 2x2 state-transition matrices and decay
// constants that carry boundary state across fixed-length blocks of a first
// or second order linear recurrence.
//
// The recurrences are
//
//	causal      y[j] = b0*x[j] + a1*y[j-1] + a2*y[j-2]
//	anticausal  z[j] = b0*y[j] + a1*z[j+1] + a2*z[j+2]
//
// A causal state is [y[j], y[j-1]] (most recent first); an anticausal state
// is [z[j], z[j+1]] (nearest first). With that ordering one homogeneous step
// is the companion matrix [[a1, a2], [1, 0]] in both directions.
//
// Complex arithmetic is used internally for oscillatory second order
// filters; every exported result is real.
package transition

import "github.com/ajroetker/go-highway/hwy"

// Number is the element constraint for the generic matrix helpers.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Mat2 is a row-major 2x2 matrix.
type Mat2[T Number] [2][2]T

// Vec2 is a two-component recurrence state.
type Vec2[T Number] [2]T

// Mul returns a*b.
func Mul[T Number](a, b Mat2[T]) Mat2[T] {
	return Mat2[T]{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

// MulVec returns a*v.
func MulVec[T Number](a Mat2[T], v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		a[0][0]*v[0] + a[0][1]*v[1],
		a[1][0]*v[0] + a[1][1]*v[1],
	}
}

// AddVec returns a+b.
func AddVec[T Number](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] + b[0], a[1] + b[1]}
}

// Convert narrows or widens a float64 matrix to T.
func Convert[T hwy.Floats](m Mat2[float64]) Mat2[T] {
	return Mat2[T]{
		{T(m[0][0]), T(m[0][1])},
		{T(m[1][0]), T(m[1][1])},
	}
}
