package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with all components set to v.
func Elem(v float64) r2.Vec {
	return r2.Vec{X: v, Y: v}
}

// EqualWithin compares two vectors component-wise to within a tolerance.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem returns a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem returns a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// AbsElem returns the vector with the absolute value of each component.
func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{X: math.Abs(a.X), Y: math.Abs(a.Y)}
}

// Set is a collection of 2d points.
type Set []r2.Vec

// Min returns the minimum components of a set of points.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max returns the maximum components of a set of points.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Shoelace returns the signed area of the polygon described by the
// vertex loop. Positive for counter-clockwise winding.
func Shoelace(vertex []r2.Vec) float64 {
	var sum float64
	n := len(vertex)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertex[i].X*vertex[j].Y - vertex[j].X*vertex[i].Y
	}
	return sum / 2
}
