package d2

import "gonum.org/v1/gonum/spatial/r2"

// Box is a 2d bounding box.
type Box r2.Box

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Include enlarges a 2d box to include a point.
func (a Box) Include(v r2.Vec) Box {
	return Box{Min: MinElem(a.Min, v), Max: MaxElem(a.Max, v)}
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{Min: r2.Add(a.Min, v), Max: r2.Add(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Contains checks if the 2d box contains the given point
// (bounds count as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// ContainsBox checks if box b lies fully inside box a.
func (a Box) ContainsBox(b Box) bool {
	return a.Contains(b.Min) && a.Contains(b.Max)
}

// Equals tests the equality of 2d boxes to within a tolerance.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}
