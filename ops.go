package vector2

import "math"

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar 2D cross product of v and w, i.e. the z
// component of the 3D cross product. Positive when w is counter-clockwise
// from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Distance returns the Euclidean distance between v and w.
func (v Vector) Distance(w Vector) float64 {
	return v.Sub(w).Norm()
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Rotate returns the vector rotated counter-clockwise by rad radians.
func (v Vector) Rotate(rad float64) Vector {
	sin, cos := math.Sincos(rad)
	return Vector{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp linearly interpolates from v toward w. t is not clamped: 0 gives v,
// 1 gives w, values outside [0, 1] extrapolate.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}
