// Package vector2 provides an immutable two-dimensional float64 vector.
//
// Every operation is a pure function returning a new value; nothing is
// mutated in place. Inputs are never validated: NaN and ±Inf components
// propagate through arithmetic per IEEE 754. The one exception is Unit,
// which fails explicitly for a zero-length vector.
package vector2

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned by Unit when the vector has zero length and
// therefore no defined direction.
var ErrZeroVector = errors.New("vector2: zero vector has no direction")

// Vector is a 2D vector. The zero value is the origin.
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector {
	return Vector{x, y}
}

// Origin returns the zero vector (0, 0).
func Origin() Vector {
	return Vector{}
}

// Add adds two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub subtracts w from v.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vector) Scale(c float64) Vector {
	return Vector{v.X * c, v.Y * c}
}

// Div divides the vector by a scalar. There is no zero check: dividing by
// zero yields ±Inf or NaN components per IEEE 754, and handling that is the
// caller's responsibility.
func (v Vector) Div(c float64) Vector {
	return Vector{v.X / c, v.Y / c}
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether the vector has exactly zero length. The comparison
// is exact, not a tolerance: components small enough that the squared sum
// underflows to 0 count as zero.
func (v Vector) IsZero() bool {
	return v.Norm() == 0
}

// Angle returns the angle of the vector from the positive x axis in
// radians, in (-π, π]. The zero vector gives 0; callers must not read a
// direction into that.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Unit returns the vector scaled to length 1 (up to rounding). A
// zero-length vector has no direction, so Unit then returns the origin and
// ErrZeroVector.
func (v Vector) Unit() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Origin(), ErrZeroVector
	}
	return v.Div(n), nil
}

// String renders the vector as "(x, y)". Diagnostic output only, not a
// parseable format.
func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
